package client

import (
	"context"
	"fmt"

	pb "github.com/dmitrijs2005/vaccinehub/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

type GRPCClient struct {
	conn   *grpc.ClientConn
	client pb.AuthServiceClient
}

// NewGRPCClient creates a client for endpointURL. Extra dial options are
// appended after the default insecure transport credentials.
func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}

	return &GRPCClient{conn: conn, client: pb.NewAuthServiceClient(conn)}, nil
}

func (s *GRPCClient) Register(ctx context.Context, fields map[string]string, password []byte) (*User, error) {
	m := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		m[k] = v
	}
	m["password"] = string(password)

	req, err := structpb.NewStruct(m)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return nil, mapError(err)
	}
	return userFromStruct(resp), nil
}

func (s *GRPCClient) Login(ctx context.Context, email string, password []byte) (*User, error) {
	req, err := structpb.NewStruct(map[string]any{
		"email":    email,
		"password": string(password),
	})
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return nil, mapError(err)
	}
	return userFromStruct(resp), nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func userFromStruct(resp *structpb.Struct) *User {
	f := resp.GetFields()["user"].GetStructValue().GetFields()
	return &User{
		FirstName: f["firstName"].GetStringValue(),
		LastName:  f["lastName"].GetStringValue(),
		Email:     f["email"].GetStringValue(),
		Location:  f["location"].GetStringValue(),
		Date:      f["date"].GetStringValue(),
	}
}

func mapError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unavailable:
		return ErrUnavailable
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", ErrAlreadyExists, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidRequest, st.Message())
	}
	return err
}
