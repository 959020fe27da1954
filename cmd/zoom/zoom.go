package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/spf13/cobra"

	"github.com/willbeason/zoom-fractal/pkg/config"
	"github.com/willbeason/zoom-fractal/pkg/controller"
	"github.com/willbeason/zoom-fractal/pkg/sink"
)

const (
	configFlag  = "config"
	outFlag     = "out"
	workersFlag = "workers"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zoom",
		Short: "Render every frame of a fractal zoom described by a YAML file",
		Args:  cobra.ExactArgs(0),
		RunE:  runCmd,
	}

	cmd.Flags().String(configFlag, "zoom.yaml", "YAML file describing the run")
	cmd.Flags().String(outFlag, "", "directory for PNG frames, overriding the config")
	cmd.Flags().Int(workersFlag, 0, "goroutines rendering rows, overriding the config")

	return cmd
}

func runCmd(cmd *cobra.Command, _ []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	configPath, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if out, _ := cmd.Flags().GetString(outFlag); out != "" {
		cfg.Output.Dir = out
	}
	if workers, _ := cmd.Flags().GetInt(workersFlag); workers > 0 {
		cfg.Output.Workers = workers
	}

	pngSink, err := sink.NewPNG(cfg.Output.Dir)
	if err != nil {
		return err
	}
	sinks := sink.Multi{pngSink}

	if cfg.Output.Mqtt.URL != "" {
		client, err := connect(cfg.Output.Mqtt)
		if err != nil {
			return err
		}
		defer client.Disconnect(250)

		sinks = append(sinks, sink.NewMQTT(client, cfg.Output.Mqtt.Topic, cfg.Output.Mqtt.QoS))
	}

	ctrl, err := cfg.Controller(controller.WithSink(sinks))
	if err != nil {
		return fmt.Errorf("%s: %w", configPath, err)
	}

	start := time.Now()
	err = ctrl.Run()
	if err != nil {
		return err
	}
	log.Printf("finished in %v, frames in %s", time.Since(start), cfg.Output.Dir)

	return nil
}

func connect(c config.Mqtt) (mqtt.Client, error) {
	options := mqtt.NewClientOptions().
		AddBroker(c.URL).
		SetClientID(c.ClientID).
		SetUsername(c.Username).
		SetPassword(c.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second)
	client := mqtt.NewClient(options)

	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connecting to %s: %w", c.URL, token.Error())
	}
	log.Printf("publishing frames to %s on %s", c.Topic, c.URL)

	return client, nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
