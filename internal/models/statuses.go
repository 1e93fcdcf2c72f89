package models

type UserRole string
type ReportStatus string
type ReportReason string
type PostCategory string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"

	ReportStatusPending  ReportStatus = "В обработке"
	ReportStatusReviewed ReportStatus = "Просмотрено"
	ReportStatusResolved ReportStatus = "Решено"
	ReportStatusRejected ReportStatus = "Отклонено"

	ReportReasonSpam          ReportReason = "Спам"
	ReportReasonFraud         ReportReason = "Мошенничество"
	ReportReasonInappropriate ReportReason = "Неприемлемый контент"
	ReportReasonOffensive     ReportReason = "Оскорбления"
	ReportReasonOther         ReportReason = "Другая причина"

	PostCategoryOther      PostCategory = "Другое"
	PostCategoryPies       PostCategory = "Пироги"
	PostCategoryJams       PostCategory = "Варенье и джемы"
	PostCategoryVegetables PostCategory = "Овощи"
	PostCategoryDairy      PostCategory = "Молочные продукты"
	PostCategoryMeat       PostCategory = "Мясо"
	PostCategoryBakery     PostCategory = "Выпечка"
)
