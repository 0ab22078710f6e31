package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/happybirthday/ai-server/common/config"
	"github.com/happybirthday/ai-server/common/logger"
	"github.com/happybirthday/ai-server/controller"
	"github.com/happybirthday/ai-server/middleware"
	"github.com/happybirthday/ai-server/monitor"
	"github.com/happybirthday/ai-server/relay/channel/gemini"
	"github.com/happybirthday/ai-server/relay/channel/replicate"
	"github.com/happybirthday/ai-server/router"
	"github.com/happybirthday/ai-server/service"
	"github.com/happybirthday/ai-server/service/media"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type serveOptions struct {
	envFile string
	port    int
	logDir  string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &serveOptions{}
	root := &cobra.Command{
		Use:           "ai-server",
		Short:         "Happy Birthday AI backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file read at startup, ignored when missing")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}
	for _, c := range []*cobra.Command{root, serve} {
		c.Flags().IntVar(&opts.port, "port", 0, "listen port, overrides PORT")
		c.Flags().StringVar(&opts.logDir, "log-dir", "", "directory for log files, overrides LOG_DIR")
	}

	root.AddCommand(serve, newDoctorCommand(opts))
	return root
}

func newDoctorCommand(opts *serveOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check ffmpeg, ffprobe and API credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(opts.envFile); err != nil {
				return err
			}
			checks := monitor.Preflight()
			out := cmd.OutOrStdout()
			for _, check := range checks {
				fmt.Fprintf(out, "%-8s %-20s %s\n", check.Severity, check.Name, check.Detail)
			}
			if monitor.AnyFailed(checks) {
				return errors.New("preflight failed")
			}
			return nil
		},
	}
}

func runServe(cmd *cobra.Command, opts *serveOptions) error {
	if err := config.Load(opts.envFile); err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		config.Port = opts.port
	}
	if cmd.Flags().Changed("log-dir") {
		config.LogDir = opts.logDir
	}

	logger.LogDir = config.LogDir
	logger.SetupLogger()
	logger.SysLog(fmt.Sprintf("%s started", config.SystemName))
	if config.GinMode != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	if config.DebugEnabled {
		logger.SysLog("running in debug mode")
	}
	monitor.LogPreflight(monitor.Preflight())

	client, err := service.GetRelayHttpClient()
	if err != nil {
		return errors.Wrap(err, "failed to build relay http client")
	}
	refiner, err := gemini.NewRefiner(context.Background(), config.GeminiAPIKey, config.GeminiModel, client)
	if err != nil {
		return errors.Wrap(err, "failed to initialize gemini client")
	}
	controllers := router.Controllers{
		AI:    controller.NewAIController(replicate.NewAdaptor(config.ReplicateAPIToken, client), refiner),
		Media: controller.NewMediaController(media.NewTranscoder(config.FFmpegPath, config.FFprobePath)),
	}

	server := gin.New()
	server.Use(gin.Recovery())
	server.Use(middleware.RequestId())
	middleware.SetUpLogger(server)
	if err := router.SetRouter(server, controllers); err != nil {
		return err
	}

	port := strconv.Itoa(config.Port)
	logger.SysLog("listening on :" + port)
	if err := server.Run(":" + port); err != nil {
		logger.FatalLog("failed to start HTTP server: " + err.Error())
	}
	return nil
}
