//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/oshokin/alarm-clock/internal/config"
	pb "github.com/oshokin/alarm-clock/internal/pb/v1"
)

// Client wraps the gRPC AlarmService client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the alarm server.
	conn *grpc.ClientConn
	// api is the AlarmService client.
	api pb.AlarmServiceClient

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
	// requester identifies the caller in server logs.
	requester string
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

// WithRequester sets the "user@host" sent with mutating calls.
func WithRequester(requester string) Option {
	return func(c *Client) {
		c.requester = requester
	}
}

var (
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("address must be provided")
	// errNotConnected is returned when a call is made on a client without a connection.
	errNotConnected = errors.New("client is not connected")
)

// CreateParams describes an alarm to create.
type CreateParams struct {
	Title  string
	Hour   int
	Minute int
	// Weekdays are 1..7 Sunday-first.
	Weekdays []int
}

// Dial establishes a gRPC connection to the alarm server.
// Note: this uses insecure transport credentials; the server is meant to be
// reached on a trusted local network.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial alarm server: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         pb.NewAlarmServiceClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// ListAlarms fetches a fresh listing.
func (c *Client) ListAlarms(ctx context.Context) (*pb.ListAlarmsResponse, error) {
	if c.api == nil {
		return nil, errNotConnected
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.ListAlarms(callCtx, new(pb.ListAlarmsRequest))
	if err != nil {
		return nil, fmt.Errorf("list alarms: %w", err)
	}

	return resp, nil
}

// CreateAlarm creates an alarm.
func (c *Client) CreateAlarm(ctx context.Context, params *CreateParams) (*pb.CreateAlarmResponse, error) {
	if c.api == nil {
		return nil, errNotConnected
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	weekdays := make([]int32, 0, len(params.Weekdays))
	for _, day := range params.Weekdays {
		weekdays = append(weekdays, int32(day)) //nolint:gosec // Validated by the server.
	}

	//nolint:gosec // Validated by the server.
	request := &pb.CreateAlarmRequest{
		Title:     params.Title,
		Hour:      int32(params.Hour),
		Minute:    int32(params.Minute),
		Weekdays:  weekdays,
		Requester: c.requester,
	}

	resp, err := c.api.CreateAlarm(callCtx, request)
	if err != nil {
		return nil, fmt.Errorf("create alarm: %w", err)
	}

	return resp, nil
}

// DeleteAlarms removes alarms by identifier.
func (c *Client) DeleteAlarms(ctx context.Context, identifiers []string) (*pb.DeleteAlarmsResponse, error) {
	if c.api == nil {
		return nil, errNotConnected
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	request := &pb.DeleteAlarmsRequest{
		Identifiers: identifiers,
		Requester:   c.requester,
	}

	resp, err := c.api.DeleteAlarms(callCtx, request)
	if err != nil {
		return nil, fmt.Errorf("delete alarms: %w", err)
	}

	return resp, nil
}

// Activate re-reads the authorization state on the server.
func (c *Client) Activate(ctx context.Context) (string, error) {
	if c.api == nil {
		return "", errNotConnected
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.Activate(callCtx, new(pb.ActivateRequest))
	if err != nil {
		return "", fmt.Errorf("activate: %w", err)
	}

	return resp.GetAuthorization(), nil
}

// RequestAuthorization asks the server for permission to deliver alarms.
func (c *Client) RequestAuthorization(ctx context.Context) (string, error) {
	if c.api == nil {
		return "", errNotConnected
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.RequestAuthorization(callCtx, new(pb.RequestAuthorizationRequest))
	if err != nil {
		return "", fmt.Errorf("request authorization: %w", err)
	}

	return resp.GetAuthorization(), nil
}

// StopSound dismisses the ringing alarm.
func (c *Client) StopSound(ctx context.Context) (bool, error) {
	if c.api == nil {
		return false, errNotConnected
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.StopSound(callCtx, new(pb.StopSoundRequest))
	if err != nil {
		return false, fmt.Errorf("stop sound: %w", err)
	}

	return resp.GetStopped(), nil
}

// Watch streams snapshots and ring events to handle until ctx is done or the
// stream fails. The call timeout does not apply.
func (c *Client) Watch(ctx context.Context, handle func(*pb.WatchAlarmsResponse) error) error {
	if c.api == nil {
		return errNotConnected
	}

	stream, err := c.api.WatchAlarms(ctx, new(pb.WatchAlarmsRequest))
	if err != nil {
		return fmt.Errorf("watch alarms: %w", err)
	}

	for {
		resp, err := stream.Recv()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return fmt.Errorf("receive watch update: %w", err)
		}

		if err := handle(resp); err != nil {
			return err
		}
	}
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
