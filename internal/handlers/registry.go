package handlers

// AppHandlers holds every HTTP handler.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	NotificationHandler *NotificationHandler
	CustomerHandler     *CustomerHandler
	TaskHandler         *TaskHandler
	LeaveHandler        *LeaveHandler
	BabyNameHandler     *BabyNameHandler
	PDFHandler          *PDFHandler
}
