// Package mocks provides gomock implementations of the console's ports.
//
// To regenerate after an interface change, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	auth := mocks.NewMockAuthenticator(ctrl)
//	auth.EXPECT().Login(gomock.Any(), "admin123").Return(domain.Token("T1"), nil)
package mocks

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=gateways_mock.go github.com/nfrund/orderdesk/internal/dashboard Authenticator,OrderSource
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=session_store_mock.go github.com/nfrund/orderdesk/internal/session Store
