package alarm

import (
	"context"
	"errors"
	"net"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	"github.com/oshokin/alarm-clock/internal/notification"
	pb "github.com/oshokin/alarm-clock/internal/pb/v1"
	"github.com/oshokin/alarm-clock/internal/pubsub"
	"github.com/oshokin/alarm-clock/internal/service/ringer"
	"github.com/oshokin/alarm-clock/internal/service/scheduler"
)

var errTestList = errors.New("test list error")

// fakeService implements the Service interface for unit testing the transport.
type fakeService struct {
	mu sync.Mutex
	// alarms are the pending definitions.
	alarms []*domain.Definition
	// state is the authorization state.
	state domain.AuthorizationState
	// listErr is returned by ListAlarms.
	listErr error
	// refuse makes CreateAlarm fail for these weekdays.
	refuse map[domain.Weekday]bool
	// snapshots notifies subscribers.
	snapshots *pubsub.Hub[scheduler.Snapshot]
}

func newFakeService() *fakeService {
	f := &fakeService{
		state:     domain.AuthorizationAuthorized,
		snapshots: pubsub.NewHub[scheduler.Snapshot](),
	}

	f.snapshots.Publish(scheduler.Snapshot{Authorization: f.state})

	return f
}

func (f *fakeService) ListAlarms(context.Context) ([]*domain.Definition, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listErr != nil {
		return nil, f.listErr
	}

	f.snapshots.Publish(scheduler.Snapshot{Alarms: domain.CloneAll(f.alarms), Authorization: f.state})

	return domain.CloneAll(f.alarms), nil
}

func (f *fakeService) CreateAlarm(
	_ context.Context,
	title string,
	hour, minute int,
	days domain.WeekdaySelection,
) []domain.Submission {
	f.mu.Lock()
	defer f.mu.Unlock()

	results := make([]domain.Submission, 0, domain.DaysPerWeek)

	for _, day := range days.Included() {
		def := domain.NewDefinition(title, domain.WeeklyTrigger(day, hour, minute), time.Now())
		if f.refuse[day] {
			results = append(results, domain.Submission{Definition: def, Err: notification.ErrNotAuthorized})

			continue
		}

		f.alarms = append(f.alarms, def)
		results = append(results, domain.Submission{Definition: def})
	}

	return results
}

func (f *fakeService) DeleteAlarms(_ context.Context, identifiers []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.alarms = slices.DeleteFunc(f.alarms, func(d *domain.Definition) bool {
		return slices.Contains(identifiers, d.Identifier)
	})

	return nil
}

func (f *fakeService) Activate(context.Context) (domain.AuthorizationState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state, nil
}

func (f *fakeService) RequestAuthorization(context.Context) (domain.AuthorizationState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == domain.AuthorizationUndetermined {
		f.state = domain.AuthorizationAuthorized
	}

	return f.state, nil
}

func (f *fakeService) Snapshot(context.Context) (scheduler.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return scheduler.Snapshot{Alarms: domain.CloneAll(f.alarms), Authorization: f.state}, nil
}

func (f *fakeService) Subscribe(ctx context.Context) <-chan scheduler.Snapshot {
	return f.snapshots.Subscribe(ctx)
}

// fakeRinger implements the Ringer interface.
type fakeRinger struct {
	// ringing is reported and cleared by Stop.
	ringing bool
	// events notifies subscribers.
	events *pubsub.Hub[ringer.Event]
}

func (f *fakeRinger) Stop(context.Context) bool {
	stopped := f.ringing
	f.ringing = false

	return stopped
}

func (f *fakeRinger) Subscribe(ctx context.Context) <-chan ringer.Event {
	return f.events.Subscribe(ctx)
}

// dialServer serves s over an in-memory listener and returns a client.
func dialServer(t *testing.T, s *Server) pb.AlarmServiceClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	grpcServer := grpc.NewServer()
	pb.RegisterAlarmServiceServer(grpcServer, s)

	go func() {
		_ = grpcServer.Serve(lis) //nolint:errcheck // Stopped by cleanup.
	}()

	conn, err := grpc.NewClient(
		"passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()

		grpcServer.Stop()
	})

	return pb.NewAlarmServiceClient(conn)
}

func newTestServer(opts ...ServerOption) (*Server, *fakeService, *fakeRinger) {
	svc := newFakeService()
	r := &fakeRinger{events: pubsub.NewFeed[ringer.Event]()}

	// 2026-10-14 is a Wednesday.
	now := time.Date(2026, time.October, 14, 12, 0, 30, 0, time.UTC)

	opts = append([]ServerOption{WithServerClock(func() time.Time { return now })}, opts...)

	return NewServer(svc, r, opts...), svc, r
}

// TestServer_CreateAlarm_Validation ensures out-of-range fields return InvalidArgument with details.
func TestServer_CreateAlarm_Validation(t *testing.T) {
	t.Parallel()

	s, _, _ := newTestServer()

	_, err := s.CreateAlarm(context.Background(), nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.CreateAlarm(context.Background(), &pb.CreateAlarmRequest{Hour: 24, Minute: 60, Weekdays: []int32{0, 8}})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	st := status.Convert(err)
	require.Len(t, st.Details(), 1)

	badRequest, ok := st.Details()[0].(*errdetails.BadRequest)
	require.True(t, ok)

	fields := make([]string, 0, len(badRequest.GetFieldViolations()))
	for _, violation := range badRequest.GetFieldViolations() {
		fields = append(fields, violation.GetField())
	}

	require.Equal(t, []string{"hour", "minute", "weekdays[0]", "weekdays[1]"}, fields)
}

// TestServer_CreateListDelete exercises the unary calls over the wire.
func TestServer_CreateListDelete(t *testing.T) {
	t.Parallel()

	s, svc, _ := newTestServer()
	client := dialServer(t, s)
	ctx := context.Background()

	svc.refuse = map[domain.Weekday]bool{domain.Friday: true}

	created, err := client.CreateAlarm(ctx, &pb.CreateAlarmRequest{
		Title:    "Gym",
		Hour:     13,
		Minute:   0,
		Weekdays: []int32{int32(domain.Wednesday), int32(domain.Friday)},
	})
	require.NoError(t, err)
	require.Len(t, created.GetCreated(), 1)
	require.Len(t, created.GetFailures(), 1)
	require.Equal(t, int32(domain.Friday), created.GetFailures()[0].GetWeekday())
	require.Len(t, created.GetAlarms(), 1)

	alarm := created.GetCreated()[0]
	require.Equal(t, "Gym", alarm.GetTitle())
	require.Equal(t, int32(domain.Wednesday), alarm.GetWeekday())
	require.Equal(t, "Среда", alarm.GetWeekdayLabel())
	require.NotNil(t, alarm.GetCreatedAt())
	require.Equal(t, time.Date(2026, time.October, 14, 13, 0, 0, 0, time.UTC), alarm.GetNextTrigger().AsTime())
	require.Equal(t, int64(3570), alarm.GetFireInSeconds())

	listed, err := client.ListAlarms(ctx, new(pb.ListAlarmsRequest))
	require.NoError(t, err)
	require.Len(t, listed.GetAlarms(), 1)
	require.Equal(t, "authorized", listed.GetAuthorization())

	deleted, err := client.DeleteAlarms(ctx, &pb.DeleteAlarmsRequest{Identifiers: []string{alarm.GetIdentifier()}})
	require.NoError(t, err)
	require.Empty(t, deleted.GetAlarms())
}

// TestServer_ListAlarms_Failure maps core failures to Internal.
func TestServer_ListAlarms_Failure(t *testing.T) {
	t.Parallel()

	s, svc, _ := newTestServer()
	svc.listErr = errTestList

	_, err := s.ListAlarms(context.Background(), new(pb.ListAlarmsRequest))
	require.Equal(t, codes.Internal, status.Code(err))
}

// TestServer_Authorization returns the state names.
func TestServer_Authorization(t *testing.T) {
	t.Parallel()

	s, svc, _ := newTestServer()
	client := dialServer(t, s)
	ctx := context.Background()

	svc.state = domain.AuthorizationUndetermined

	resp, err := client.Activate(ctx, new(pb.ActivateRequest))
	require.NoError(t, err)
	require.Equal(t, "undetermined", resp.GetAuthorization())

	resp, err = client.RequestAuthorization(ctx, new(pb.RequestAuthorizationRequest))
	require.NoError(t, err)
	require.Equal(t, "authorized", resp.GetAuthorization())
}

// TestServer_StopSound reports whether something was ringing.
func TestServer_StopSound(t *testing.T) {
	t.Parallel()

	s, _, r := newTestServer()
	client := dialServer(t, s)
	ctx := context.Background()

	r.ringing = true

	resp, err := client.StopSound(ctx, new(pb.StopSoundRequest))
	require.NoError(t, err)
	require.True(t, resp.GetStopped())

	resp, err = client.StopSound(ctx, new(pb.StopSoundRequest))
	require.NoError(t, err)
	require.False(t, resp.GetStopped())
}

// TestServer_WatchAlarms streams the current snapshot, then updates and ring events.
func TestServer_WatchAlarms(t *testing.T) {
	t.Parallel()

	s, svc, r := newTestServer()
	client := dialServer(t, s)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := client.WatchAlarms(ctx, new(pb.WatchAlarmsRequest))
	require.NoError(t, err)

	first, err := stream.Recv()
	require.NoError(t, err)
	require.NotNil(t, first.GetSnapshot())
	require.Empty(t, first.GetSnapshot().GetAlarms())

	// The subscriptions are registered before the first message is sent.
	svc.CreateAlarm(ctx, "Wake", 7, 30, domain.SelectWeekdays(domain.Monday))

	_, err = svc.ListAlarms(ctx)
	require.NoError(t, err)

	update, err := stream.Recv()
	require.NoError(t, err)
	require.NotNil(t, update.GetSnapshot())
	require.Len(t, update.GetSnapshot().GetAlarms(), 1)

	at := time.Date(2026, time.October, 14, 7, 30, 0, 0, time.UTC)
	def := domain.NewDefinition("Wake", domain.DailyTrigger(7, 30), at)
	r.events.Publish(ringer.Event{Kind: ringer.EventRinging, Alarm: def, At: at})

	ring, err := stream.Recv()
	require.NoError(t, err)
	require.NotNil(t, ring.GetRing())
	require.Equal(t, "ringing", ring.GetRing().GetKind())
	require.Equal(t, def.Identifier, ring.GetRing().GetAlarm().GetIdentifier())
	require.Equal(t, at, ring.GetRing().GetAt().AsTime())
}

// TestServer_WatchAlarms_SingleInitialSnapshot sends the listed snapshot once.
func TestServer_WatchAlarms_SingleInitialSnapshot(t *testing.T) {
	t.Parallel()

	s, svc, r := newTestServer()
	client := dialServer(t, s)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	svc.CreateAlarm(ctx, "Wake", 7, 30, domain.SelectWeekdays(domain.Monday))

	_, err := svc.ListAlarms(ctx)
	require.NoError(t, err)

	stream, err := client.WatchAlarms(ctx, new(pb.WatchAlarmsRequest))
	require.NoError(t, err)

	first, err := stream.Recv()
	require.NoError(t, err)
	require.Len(t, first.GetSnapshot().GetAlarms(), 1)

	r.events.Publish(ringer.Event{Kind: ringer.EventDismissed, At: time.Now()})

	next, err := stream.Recv()
	require.NoError(t, err)
	require.Nil(t, next.GetSnapshot())
	require.Equal(t, "dismissed", next.GetRing().GetKind())
}

// TestServer_WatchAlarms_EndsOnShutdown closes open streams when the server context is done.
func TestServer_WatchAlarms_EndsOnShutdown(t *testing.T) {
	t.Parallel()

	lifetime, shutdown := context.WithCancel(context.Background())
	defer shutdown()

	s, _, _ := newTestServer(WithServerContext(lifetime))
	client := dialServer(t, s)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := client.WatchAlarms(ctx, new(pb.WatchAlarmsRequest))
	require.NoError(t, err)

	_, err = stream.Recv()
	require.NoError(t, err)

	shutdown()

	_, err = stream.Recv()
	require.Equal(t, codes.Unavailable, status.Code(err))
}
