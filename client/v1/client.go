package v1

type TimewiseClient struct {
	Transport  *Transport
	Clock      *ClockEndpoint
	Timesheets *TimesheetEndpoint
}

// NewTimewiseClient initializes the API client
func NewTimewiseClient(baseURL string, token string) *TimewiseClient {
	t := NewTransport(baseURL, token)
	return &TimewiseClient{
		Transport:  t,
		Clock:      &ClockEndpoint{transport: t},
		Timesheets: &TimesheetEndpoint{transport: t},
	}
}
