package client

import (
	"time"

	"github.com/kod2ulz/gostart/utils"
)

const (
	Version          = "1.0.0"
	LiveURL          = "https://gateway.pmnts.io"
	SandboxURL       = "https://gateway.pmnts-sandbox.io"
	DefaultVersion   = "1.0"
	DefaultTimeout   = 50 * time.Second
	DefaultCurrency  = "AUD"
	UnknownIP        = "UNKNOWN"
	defaultEnvPrefix = "FATZEBRA"
)

// GatewayConfig is owned by a single Gateway. Timeout, CA bundle and client IP may
// change through the Gateway setters; the rest is fixed at construction.
type GatewayConfig struct {
	Username string
	Token    string
	TestMode bool
	// URL overrides the sandbox/live URL derived from TestMode.
	URL string
	// APIVersion defaults to DefaultVersion unless Unversioned is set.
	APIVersion  string
	Unversioned bool
	Timeout     time.Duration
	CABundle    string
	CAPem       []byte
	CABucket    string
	CAObject    string
	ClientIP    string
}

func NewGatewayConfig(prefix ...string) *GatewayConfig {
	env := utils.Env.Helper(prefix...).OrDefault(defaultEnvPrefix)
	return &GatewayConfig{
		Username:    env.MustGet("USERNAME").String(),
		Token:       env.MustGet("TOKEN").String(),
		TestMode:    env.Get("TEST_MODE", "true").Bool(),
		URL:         env.Get("URL", "").String(),
		APIVersion:  env.Get("API_VERSION", DefaultVersion).String(),
		Unversioned: env.Get("UNVERSIONED", "false").Bool(),
		Timeout:     env.Get("TIMEOUT", DefaultTimeout.String()).Duration(),
		CABundle:    env.Get("CA_BUNDLE", "").String(),
		CABucket:    env.Get("CA_BUCKET", "").String(),
		CAObject:    env.Get("CA_OBJECT", "").String(),
		ClientIP:    env.Get("CLIENT_IP", "").String(),
	}
}

// Credentials returns a config for the given account with every other field defaulted.
func Credentials(username, token string, testMode bool) *GatewayConfig {
	return &GatewayConfig{
		Username:   username,
		Token:      token,
		TestMode:   testMode,
		APIVersion: DefaultVersion,
		Timeout:    DefaultTimeout,
	}
}

// BaseURL is the explicit URL when set, otherwise the sandbox or live gateway.
func (c GatewayConfig) BaseURL() string {
	if c.URL != "" {
		return c.URL
	} else if c.TestMode {
		return SandboxURL
	}
	return LiveURL
}

func (c GatewayConfig) validate() error {
	if c.Username == "" {
		return InvalidArgument("Username is required")
	} else if c.Token == "" {
		return InvalidArgument("Token is required")
	} else if c.Timeout < 0 {
		return InvalidArgument("Timeout must not be negative")
	}
	return nil
}
