package tests

// Service doubles for handler tests are hand-written in mocks_test.go.
// Generated equivalents can be produced with:
//
//   go generate ./internal/adapter/http/handlers/tests
//
//go:generate mockery --name TaskService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename task_service_mock.go --with-expecter
//go:generate mockery --name AuthService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename auth_service_mock.go --with-expecter
//go:generate mockery --name AdminService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename admin_service_mock.go --with-expecter
