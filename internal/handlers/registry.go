package handlers

// AppHandlers - все HTTP-обработчики приложения, собирается в app
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	PostHandler         *PostHandler
	NotificationHandler *NotificationHandler
	ReportHandler       *ReportHandler
	AdminHandler        *AdminHandler
}
