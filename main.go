package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/robotface/api"
	"github.com/matt-g-everett/robotface/face"
	"github.com/matt-g-everett/robotface/mirror"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

type app struct {
	Config   face.Config
	Theme    face.Theme
	Stage    *face.Stage
	Client   mqtt.Client
	Streamer *mirror.Streamer
}

func newApp() *app {
	a := new(app)
	return a
}

// readConfig loads configPath. A missing file is fine, defaults apply.
func (a *app) readConfig(configPath string) error {
	f, err := os.Open(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		log.Printf("No config at %s, using defaults", configPath)
	} else {
		defer f.Close()
		decoder := yaml.NewDecoder(f)
		if err = decoder.Decode(&a.Config); err != nil {
			return fmt.Errorf("decoding %s: %w", configPath, err)
		}
	}
	a.Config.ApplyDefaults()

	a.Theme, err = face.ParseTheme(a.Config.Theme)
	return err
}

func (a *app) handleOnConnect(ctx context.Context) mqtt.OnConnectHandler {
	return func(client mqtt.Client) {
		log.Println("Connected")
		if err := a.Streamer.Subscribe(ctx); err != nil {
			log.Printf("Subscribe: %v", err)
		}
	}
}

func (a *app) connectMirror(ctx context.Context) error {
	if a.Config.Mqtt.URL == "" {
		return nil
	}
	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID(a.Config.Mqtt.ClientID).
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect(ctx))
	a.Client = mqtt.NewClient(options)
	a.Streamer = mirror.NewStreamer(a.Client, a.Config, a.Stage.View, a.Stage)

	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	go a.Streamer.Run(ctx)
	return nil
}

func (a *app) serve(ctx context.Context, addr string) error {
	if addr != "" {
		a.Config.Server.Addr = addr
	}
	a.Stage = face.NewStage(a.Config, nil)
	if err := a.connectMirror(ctx); err != nil {
		return fmt.Errorf("mqtt: %w", err)
	}
	if a.Client != nil {
		defer a.Client.Disconnect(250)
	}
	return api.NewApi(ctx, a.Stage, a.Theme).Serve(a.Config.Server.Addr)
}

func main() {
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	var configPath, addr string
	a := newApp()

	rootCmd := &cobra.Command{
		Use:   "robotface",
		Short: "animated robot face driven by expression sequences",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.readConfig(configPath)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context(), "")
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "YAML config file.")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the face page",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context(), addr)
		},
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	rootCmd.AddCommand(serveCmd, newPlayCmd(a), newValidateCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
