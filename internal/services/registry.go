package services

import (
	"namedesk_backend/internal/email"
	"namedesk_backend/internal/repositories"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	NotificationService NotificationService
	CustomerService     CustomerService
	TaskService         TaskService
	LeaveService        LeaveService
	BabyNameService     BabyNameService
	PDFService          PDFService
	EmailProvider       email.Provider
}

// NewServiceContainer wires repositories into services.
func NewServiceContainer(repos *repositories.RepositoryContainer, emailProvider email.Provider) *ServiceContainer {
	return &ServiceContainer{
		AuthService:         NewAuthService(repos.UserRepo),
		UserService:         NewUserService(repos.UserRepo, emailProvider),
		NotificationService: NewNotificationService(repos.NotificationRepo, repos.UserRepo),
		CustomerService:     NewCustomerService(repos.CustomerRepo, repos.UserRepo),
		TaskService:         NewTaskService(repos.TaskRepo, repos.UserRepo),
		LeaveService:        NewLeaveService(repos.LeaveRepo, repos.UserRepo, repos.NotificationRepo, emailProvider),
		BabyNameService:     NewBabyNameService(repos.BabyNameRepo),
		PDFService:          NewPDFService(repos.PDFRepo, repos.CustomerRepo),
		EmailProvider:       emailProvider,
	}
}
