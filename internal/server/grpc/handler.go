package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/vaccinehub/internal/common"
	"github.com/dmitrijs2005/vaccinehub/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

func (s *GRPCServer) Register(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	creds, err := credentialsFromStruct(req)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	user, err := s.users.Register(ctx, creds)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "email", user.Email)
	return s.userResponse(ctx, user)
}

func (s *GRPCServer) Login(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {

	creds, err := credentialsFromStruct(req)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	user, err := s.users.Login(ctx, creds)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return s.userResponse(ctx, user)
}

// credentialsFromStruct keeps key presence: a null value counts as present
// and empty. Values other than strings and null are rejected.
func credentialsFromStruct(req *structpb.Struct) (models.Credentials, error) {
	creds := make(models.Credentials, len(req.GetFields()))
	for k, v := range req.GetFields() {
		switch v.GetKind().(type) {
		case *structpb.Value_StringValue:
			creds[k] = v.GetStringValue()
		case *structpb.Value_NullValue:
			creds[k] = ""
		default:
			return nil, &common.FieldError{Kind: common.ErrInvalidInput, Field: k}
		}
	}
	return creds, nil
}

func (s *GRPCServer) userResponse(ctx context.Context, u *models.PublicUser) (*structpb.Struct, error) {
	resp, err := structpb.NewStruct(map[string]any{
		"user": map[string]any{
			"firstName": u.FirstName,
			"lastName":  u.LastName,
			"email":     u.Email,
			"location":  u.Location,
			"date":      u.Date,
		},
	})
	if err != nil {
		s.logger.Error(ctx, "error building response", "error", err)
		return nil, status.Error(codes.Internal, common.ErrorInternal.Error())
	}
	return resp, nil
}

// toStatus maps service failures to gRPC codes. Unexpected errors are
// logged and replaced with a generic message.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrMissingField), errors.Is(err, common.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrDuplicateEmail):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, err.Error())
	default:
		s.logger.Error(ctx, err.Error())
		return status.Error(codes.Internal, common.ErrorInternal.Error())
	}
}
