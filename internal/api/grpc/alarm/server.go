package alarm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/logger"
	"github.com/oshokin/alarm-clock/internal/notification"
	pb "github.com/oshokin/alarm-clock/internal/pb/v1"
	"github.com/oshokin/alarm-clock/internal/service/ringer"
	"github.com/oshokin/alarm-clock/internal/service/scheduler"
)

// Service abstracts the scheduling core the transport layer depends on.
type Service interface {
	ListAlarms(ctx context.Context) ([]*domain.Definition, error)
	CreateAlarm(ctx context.Context, title string, hour, minute int, days domain.WeekdaySelection) []domain.Submission
	DeleteAlarms(ctx context.Context, identifiers []string) error
	Activate(ctx context.Context) (domain.AuthorizationState, error)
	RequestAuthorization(ctx context.Context) (domain.AuthorizationState, error)
	Snapshot(ctx context.Context) (scheduler.Snapshot, error)
	Subscribe(ctx context.Context) <-chan scheduler.Snapshot
}

// Ringer abstracts the component that rings fired alarms.
type Ringer interface {
	Stop(ctx context.Context) bool
	Subscribe(ctx context.Context) <-chan ringer.Event
}

// Server implements the AlarmService gRPC API.
type Server struct {
	pb.UnimplementedAlarmServiceServer

	// service provides the scheduling operations.
	service Service
	// ringer dismisses rings and streams ring events.
	ringer Ringer
	// now returns the instant next triggers are computed from.
	now func() time.Time
	// lifetime ends every open stream when done.
	lifetime context.Context //nolint:containedctx // Bounds streams GracefulStop waits for.
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithServerClock overrides the time source used for next trigger fields.
func WithServerClock(now func() time.Time) ServerOption {
	return func(s *Server) {
		if now != nil {
			s.now = now
		}
	}
}

// WithServerContext ends open WatchAlarms streams once ctx is done.
func WithServerContext(ctx context.Context) ServerOption {
	return func(s *Server) {
		if ctx != nil {
			s.lifetime = ctx
		}
	}
}

// NewServer wires the scheduling core and the ringer into a gRPC handler.
func NewServer(service Service, r Ringer, opts ...ServerOption) *Server {
	s := &Server{
		service:  service,
		ringer:   r,
		now:      time.Now,
		lifetime: context.Background(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ListAlarms refreshes the snapshot and returns it.
func (s *Server) ListAlarms(ctx context.Context, _ *pb.ListAlarmsRequest) (*pb.ListAlarmsResponse, error) {
	defs, err := s.service.ListAlarms(ctx)
	if err != nil {
		return nil, toStatus(ctx, err, "unable to list alarms")
	}

	snapshot, err := s.service.Snapshot(ctx)
	if err != nil {
		return nil, toStatus(ctx, err, "unable to read snapshot")
	}

	return &pb.ListAlarmsResponse{
		Alarms:        s.toAlarms(ctx, defs),
		Authorization: snapshot.Authorization.String(),
	}, nil
}

// CreateAlarm validates the request, submits the records and returns the refreshed listing.
func (s *Server) CreateAlarm(ctx context.Context, req *pb.CreateAlarmRequest) (*pb.CreateAlarmResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	days, err := validateCreate(req)
	if err != nil {
		return nil, err
	}

	ctx = logger.WithKV(ctx, "requester", req.GetRequester())

	results := s.service.CreateAlarm(ctx, req.GetTitle(), int(req.GetHour()), int(req.GetMinute()), days)

	resp := &pb.CreateAlarmResponse{
		Created: make([]*pb.Alarm, 0, len(results)),
	}

	for _, result := range results {
		if result.Err != nil {
			resp.Failures = append(resp.Failures, &pb.CreateFailure{
				Weekday: int32(result.Definition.Trigger.Weekday), //nolint:gosec // Weekday is 0..7.
				Message: result.Err.Error(),
			})

			continue
		}

		resp.Created = append(resp.Created, s.toAlarm(ctx, result.Definition))
	}

	logger.InfoKV(ctx, "Alarm created", "title", req.GetTitle(), "created", len(resp.Created), "failed", len(resp.Failures))

	defs, err := s.service.ListAlarms(ctx)
	if err != nil {
		return nil, toStatus(ctx, err, "unable to list alarms")
	}

	resp.Alarms = s.toAlarms(ctx, defs)

	return resp, nil
}

// DeleteAlarms removes the given records and returns the refreshed listing.
func (s *Server) DeleteAlarms(ctx context.Context, req *pb.DeleteAlarmsRequest) (*pb.DeleteAlarmsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	ctx = logger.WithKV(ctx, "requester", req.GetRequester())

	if err := s.service.DeleteAlarms(ctx, req.GetIdentifiers()); err != nil {
		return nil, toStatus(ctx, err, "unable to delete alarms")
	}

	logger.InfoKV(ctx, "Alarms deleted", "identifiers", req.GetIdentifiers())

	defs, err := s.service.ListAlarms(ctx)
	if err != nil {
		return nil, toStatus(ctx, err, "unable to list alarms")
	}

	return &pb.DeleteAlarmsResponse{Alarms: s.toAlarms(ctx, defs)}, nil
}

// Activate re-reads the authorization state and reloads the alarms when authorized.
func (s *Server) Activate(ctx context.Context, _ *pb.ActivateRequest) (*pb.AuthorizationResponse, error) {
	state, err := s.service.Activate(ctx)
	if err != nil {
		return nil, toStatus(ctx, err, "unable to activate")
	}

	return &pb.AuthorizationResponse{Authorization: state.String()}, nil
}

// RequestAuthorization asks for permission to deliver alarms.
func (s *Server) RequestAuthorization(
	ctx context.Context,
	_ *pb.RequestAuthorizationRequest,
) (*pb.AuthorizationResponse, error) {
	state, err := s.service.RequestAuthorization(ctx)
	if err != nil {
		return nil, toStatus(ctx, err, "unable to request authorization")
	}

	return &pb.AuthorizationResponse{Authorization: state.String()}, nil
}

// StopSound dismisses the ringing alarm.
func (s *Server) StopSound(ctx context.Context, _ *pb.StopSoundRequest) (*pb.StopSoundResponse, error) {
	return &pb.StopSoundResponse{Stopped: s.ringer.Stop(ctx)}, nil
}

// WatchAlarms streams snapshots and ring events until the client goes away or
// the server shuts down. The current snapshot is sent first.
func (s *Server) WatchAlarms(_ *pb.WatchAlarmsRequest, stream pb.AlarmService_WatchAlarmsServer) error {
	ctx := stream.Context()

	snapshots := s.service.Subscribe(ctx)
	events := s.ringer.Subscribe(ctx)

	for {
		var resp *pb.WatchAlarmsResponse

		select {
		case <-ctx.Done():
			return nil
		case <-s.lifetime.Done():
			return status.Error(codes.Unavailable, "server is shutting down")
		case snapshot, ok := <-snapshots:
			if !ok {
				return status.Error(codes.ResourceExhausted, "snapshot subscriber is too slow")
			}

			resp = &pb.WatchAlarmsResponse{Snapshot: s.toSnapshot(ctx, snapshot)}
		case event, ok := <-events:
			if !ok {
				return status.Error(codes.ResourceExhausted, "ring event subscriber is too slow")
			}

			resp = &pb.WatchAlarmsResponse{Ring: s.toRingEvent(ctx, event)}
		}

		if err := stream.Send(resp); err != nil {
			return err
		}
	}
}

// validateCreate checks ranges and builds the weekday selection.
func validateCreate(req *pb.CreateAlarmRequest) (domain.WeekdaySelection, error) {
	var (
		days       domain.WeekdaySelection
		violations []*errdetails.BadRequest_FieldViolation
	)

	if hour := req.GetHour(); hour < 0 || hour > 23 {
		violations = append(violations, &errdetails.BadRequest_FieldViolation{
			Field:       "hour",
			Description: fmt.Sprintf("hour %d is outside 0..23", hour),
		})
	}

	if minute := req.GetMinute(); minute < 0 || minute > 59 {
		violations = append(violations, &errdetails.BadRequest_FieldViolation{
			Field:       "minute",
			Description: fmt.Sprintf("minute %d is outside 0..59", minute),
		})
	}

	for i, n := range req.GetWeekdays() {
		day := domain.Weekday(n)
		if !day.Valid() {
			violations = append(violations, &errdetails.BadRequest_FieldViolation{
				Field:       fmt.Sprintf("weekdays[%d]", i),
				Description: fmt.Sprintf("weekday %d is outside 1..7", n),
			})

			continue
		}

		days.Set(day, true)
	}

	if len(violations) == 0 {
		return days, nil
	}

	st := status.New(codes.InvalidArgument, "invalid create alarm request")

	detailed, err := st.WithDetails(&errdetails.BadRequest{FieldViolations: violations})
	if err != nil {
		return days, st.Err()
	}

	return days, detailed.Err()
}

// toStatus maps core errors to gRPC status errors.
func toStatus(ctx context.Context, err error, message string) error {
	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, message)
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, message)
	case errors.Is(err, notification.ErrNotAuthorized):
		return status.Error(codes.PermissionDenied, message)
	default:
		logger.ErrorKV(ctx, message, "error", err)

		return status.Error(codes.Internal, message)
	}
}

func (s *Server) toSnapshot(ctx context.Context, snapshot scheduler.Snapshot) *pb.ListAlarmsResponse {
	return &pb.ListAlarmsResponse{
		Alarms:        s.toAlarms(ctx, snapshot.Alarms),
		Authorization: snapshot.Authorization.String(),
	}
}

func (s *Server) toRingEvent(ctx context.Context, event ringer.Event) *pb.RingEvent {
	ring := &pb.RingEvent{
		Kind: event.Kind.String(),
		At:   toTimestamp(event.At),
	}

	if event.Alarm != nil {
		ring.Alarm = s.toAlarm(ctx, event.Alarm)
	}

	return ring
}

func (s *Server) toAlarms(ctx context.Context, defs []*domain.Definition) []*pb.Alarm {
	alarms := make([]*pb.Alarm, 0, len(defs))
	for _, def := range defs {
		alarms = append(alarms, s.toAlarm(ctx, def))
	}

	return alarms
}

// toAlarm converts a definition and computes its next trigger.
func (s *Server) toAlarm(ctx context.Context, def *domain.Definition) *pb.Alarm {
	//nolint:gosec // Trigger fields are range checked by the domain.
	alarm := &pb.Alarm{
		Identifier: def.Identifier,
		Title:      def.Title,
		Body:       def.Body,
		Hour:       int32(def.Trigger.Hour),
		Minute:     int32(def.Trigger.Minute),
		Weekday:    int32(def.Trigger.Weekday),
		CreatedAt:  toTimestamp(def.CreatedAt),
	}

	if !def.Trigger.IsDaily() {
		alarm.WeekdayLabel = domain.WeekdayLabel(int(def.Trigger.Weekday))
	}

	now := s.now()

	delay, err := scheduler.NextFireDelay(def, now)
	if err != nil {
		logger.WarnKV(ctx, "Unable to compute next trigger", "alarm", def.Identifier, "error", err)

		return alarm
	}

	alarm.NextTrigger = timestamppb.New(now.Add(delay))
	alarm.FireInSeconds = int64(delay / time.Second)

	return alarm
}

// toTimestamp leaves zero instants unset.
func toTimestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}

	return timestamppb.New(t)
}
