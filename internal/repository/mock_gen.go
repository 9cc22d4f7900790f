// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./post.go -destination=../mocks/mock_post_repository.go -package=mocks PostRepositoryIface
//go:generate mockgen -source=./employee.go -destination=../mocks/mock_employee_repository.go -package=mocks EmployeeRepositoryIface
//go:generate mockgen -source=./subunit.go -destination=../mocks/mock_subunit_repository.go -package=mocks SubunitRepositoryIface
//go:generate mockgen -source=./attachment.go -destination=../mocks/mock_attachment_repository.go -package=mocks AttachmentRepositoryIface
