package gemini

import (
	"net/http"
	"sync/atomic"
)

const ProviderName = "gemini"

const defaultAPIVersion = "v1beta"

type Config struct {
	APIKey string
	// BaseURL overrides the SDK endpoint; empty keeps the public Gemini API.
	BaseURL    string
	APIVersion string
	Headers    map[string]string
	HTTPClient *http.Client
}

type Client struct {
	cfg Config
}

func NewClient(cfg Config) *Client {
	return &Client{cfg: normalizeConfig(cfg)}
}

var defaultClient atomic.Pointer[Client]

func init() {
	defaultClient.Store(NewClient(Config{}))
}

func Configure(cfg Config) {
	defaultClient.Store(NewClient(cfg))
}

func Chat(modelName string) ModelRef {
	return defaultClient.Load().Chat(modelName)
}

func (c *Client) Chat(modelName string) ModelRef {
	return ModelRef{
		modelName: modelName,
		client:    c,
	}
}

type ModelRef struct {
	modelName string
	client    *Client
}

func (m ModelRef) Provider() string { return ProviderName }
func (m ModelRef) Name() string     { return m.modelName }

func (m ModelRef) Client() *Client { return m.client }

func (c *Client) Config() Config { return c.cfg }

func normalizeConfig(cfg Config) Config {
	if cfg.APIVersion == "" {
		cfg.APIVersion = defaultAPIVersion
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	return cfg
}
