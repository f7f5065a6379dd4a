package face

import (
	"time"
)

// Config is the service configuration, read from YAML.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Prediction struct {
		Source    string `yaml:"source"`
		TimeoutMs int    `yaml:"timeoutMs"`
	} `yaml:"prediction"`
	Journal struct {
		Size int `yaml:"size"`
	} `yaml:"journal"`
	Theme ThemeConfig `yaml:"theme"`
	Mqtt  struct {
		URL      string `yaml:"url"`
		ClientID string `yaml:"clientId"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			State   string `yaml:"state"`
			Trigger string `yaml:"trigger"`
		} `yaml:"topics"`
		FrameRate    float64 `yaml:"frameRate"`
		TransitionMs int     `yaml:"transitionMs"`
	} `yaml:"mqtt"`
}

// ApplyDefaults fills in anything the config file left out.
func (c *Config) ApplyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":3000"
	}
	if c.Prediction.Source == "" {
		c.Prediction.Source = DefaultPredictionSource
	}
	if c.Prediction.TimeoutMs <= 0 {
		c.Prediction.TimeoutMs = 5000
	}
	if c.Journal.Size <= 0 {
		c.Journal.Size = DefaultJournalSize
	}
	if c.Mqtt.ClientID == "" {
		c.Mqtt.ClientID = "robotface"
	}
	if c.Mqtt.Topics.State == "" {
		c.Mqtt.Topics.State = "robotface/state"
	}
	if c.Mqtt.Topics.Trigger == "" {
		c.Mqtt.Topics.Trigger = "robotface/trigger"
	}
	if c.Mqtt.FrameRate <= 0 {
		c.Mqtt.FrameRate = 30
	}
	if c.Mqtt.TransitionMs <= 0 {
		c.Mqtt.TransitionMs = 120
	}
}

// PredictionTimeout returns the prediction fetch timeout.
func (c Config) PredictionTimeout() time.Duration {
	return time.Duration(c.Prediction.TimeoutMs) * time.Millisecond
}
