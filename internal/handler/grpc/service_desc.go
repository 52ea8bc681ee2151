// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"github.com/MKhiriev/go-user-keeper/models"
	"google.golang.org/grpc"
)

const (
	ServiceName = "user.UserService"

	CreateUserFullMethodName = "/" + ServiceName + "/CreateUser"
	GetUserFullMethodName    = "/" + ServiceName + "/GetUser"
	UpdateUserFullMethodName = "/" + ServiceName + "/UpdateUser"
	DeleteUserFullMethodName = "/" + ServiceName + "/DeleteUser"
)

// UserServiceServer is the server API of user.UserService.
type UserServiceServer interface {
	CreateUser(context.Context, *models.CreateUserRequest) (*models.User, error)
	GetUser(context.Context, *models.UserIDRequest) (*models.User, error)
	UpdateUser(context.Context, *models.UpdateUserRequest) (*models.UpdatedUserResponse, error)
	DeleteUser(context.Context, *models.UserIDRequest) (*models.DeletedUserResponse, error)
}

// RegisterUserServiceServer attaches srv to s.
func RegisterUserServiceServer(s grpc.ServiceRegistrar, srv UserServiceServer) {
	s.RegisterService(&UserServiceDesc, srv)
}

// UserServiceDesc describes user.UserService for grpc.Server.RegisterService.
var UserServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*UserServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateUser", Handler: createUserHandler},
		{MethodName: "GetUser", Handler: getUserHandler},
		{MethodName: "UpdateUser", Handler: updateUserHandler},
		{MethodName: "DeleteUser", Handler: deleteUserHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "user_service",
}

func createUserHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.CreateUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserServiceServer).CreateUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CreateUserFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UserServiceServer).CreateUser(ctx, req.(*models.CreateUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getUserHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.UserIDRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserServiceServer).GetUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetUserFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UserServiceServer).GetUser(ctx, req.(*models.UserIDRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func updateUserHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.UpdateUserRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserServiceServer).UpdateUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: UpdateUserFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UserServiceServer).UpdateUser(ctx, req.(*models.UpdateUserRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func deleteUserHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.UserIDRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserServiceServer).DeleteUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: DeleteUserFullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UserServiceServer).DeleteUser(ctx, req.(*models.UserIDRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// UserServiceClient is the client API of user.UserService.
type UserServiceClient interface {
	CreateUser(ctx context.Context, in *models.CreateUserRequest, opts ...grpc.CallOption) (*models.User, error)
	GetUser(ctx context.Context, in *models.UserIDRequest, opts ...grpc.CallOption) (*models.User, error)
	UpdateUser(ctx context.Context, in *models.UpdateUserRequest, opts ...grpc.CallOption) (*models.UpdatedUserResponse, error)
	DeleteUser(ctx context.Context, in *models.UserIDRequest, opts ...grpc.CallOption) (*models.DeletedUserResponse, error)
}

type userServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewUserServiceClient returns a client that always calls with the JSON
// content-subtype.
func NewUserServiceClient(cc grpc.ClientConnInterface) UserServiceClient {
	return &userServiceClient{cc: cc}
}

func (c *userServiceClient) CreateUser(ctx context.Context, in *models.CreateUserRequest, opts ...grpc.CallOption) (*models.User, error) {
	out := new(models.User)
	if err := c.cc.Invoke(ctx, CreateUserFullMethodName, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userServiceClient) GetUser(ctx context.Context, in *models.UserIDRequest, opts ...grpc.CallOption) (*models.User, error) {
	out := new(models.User)
	if err := c.cc.Invoke(ctx, GetUserFullMethodName, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userServiceClient) UpdateUser(ctx context.Context, in *models.UpdateUserRequest, opts ...grpc.CallOption) (*models.UpdatedUserResponse, error) {
	out := new(models.UpdatedUserResponse)
	if err := c.cc.Invoke(ctx, UpdateUserFullMethodName, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userServiceClient) DeleteUser(ctx context.Context, in *models.UserIDRequest, opts ...grpc.CallOption) (*models.DeletedUserResponse, error) {
	out := new(models.DeletedUserResponse)
	if err := c.cc.Invoke(ctx, DeleteUserFullMethodName, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func withJSON(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}
