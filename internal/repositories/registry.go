package repositories

import "gorm.io/gorm"

// RepositoryContainer holds every repository, all sharing one pool.
type RepositoryContainer struct {
	UserRepo         UserRepository
	NotificationRepo NotificationRepository
	CustomerRepo     CustomerRepository
	TaskRepo         TaskRepository
	LeaveRepo        LeaveRepository
	BabyNameRepo     BabyNameRepository
	PDFRepo          PDFRepository
}

func NewRepositoryContainer(db *gorm.DB) *RepositoryContainer {
	return &RepositoryContainer{
		UserRepo:         NewUserRepository(db),
		NotificationRepo: NewNotificationRepository(db),
		CustomerRepo:     NewCustomerRepository(db),
		TaskRepo:         NewTaskRepository(db),
		LeaveRepo:        NewLeaveRepository(db),
		BabyNameRepo:     NewBabyNameRepository(db),
		PDFRepo:          NewPDFRepository(db),
	}
}
