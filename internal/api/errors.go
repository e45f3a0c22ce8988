package api

import (
	"context"
	"errors"

	"github.com/matheus3301/huddle/internal/auth"
	"github.com/matheus3301/huddle/internal/status"
	"github.com/matheus3301/huddle/internal/thread"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// toStatus maps domain errors onto gRPC codes. op prefixes the message.
func toStatus(op string, err error) error {
	var te *status.TransitionError
	switch {
	case errors.Is(err, auth.ErrInvalidForm), errors.Is(err, thread.ErrEmptyDraft):
		return grpcstatus.Errorf(codes.InvalidArgument, "%s: %v", op, err)
	case errors.As(err, &te):
		return grpcstatus.Errorf(codes.FailedPrecondition, "%s: %v", op, err)
	case errors.Is(err, context.Canceled):
		return grpcstatus.Errorf(codes.Canceled, "%s: %v", op, err)
	case errors.Is(err, context.DeadlineExceeded):
		return grpcstatus.Errorf(codes.DeadlineExceeded, "%s: %v", op, err)
	default:
		return grpcstatus.Errorf(codes.Internal, "%s: %v", op, err)
	}
}
