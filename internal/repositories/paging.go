package repositories

const defaultPageSize = 50

// normalizePaging приводит параметры пагинации к безопасным значениям:
// страница меньше 1 становится первой, нулевой размер - дефолтным.
func normalizePaging(page, pageSize int) (offset, limit int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return (page - 1) * pageSize, pageSize
}
