// Package grpc exposes the user service over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/vaccinehub/internal/logging"
	pb "github.com/dmitrijs2005/vaccinehub/internal/proto"
	"github.com/dmitrijs2005/vaccinehub/internal/server/models"
	"google.golang.org/grpc"
)

// UserService is the part of services.UserService the transport needs.
type UserService interface {
	Register(ctx context.Context, creds models.Credentials) (*models.PublicUser, error)
	Login(ctx context.Context, creds models.Credentials) (*models.PublicUser, error)
}

type GRPCServer struct {
	pb.UnimplementedAuthServiceServer
	address string
	users   UserService
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, us UserService) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		users:   us,
	}
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve serves on lis until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))
	pb.RegisterAuthServiceServer(srv, s)

	stopped := make(chan struct{})
	defer close(stopped)

	go func() {
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "Stopping gRPC server...")
			srv.GracefulStop()
		case <-stopped:
		}
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
