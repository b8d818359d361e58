package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/contact-assistant/internal/addressbook"
	"github.com/username/contact-assistant/internal/bot"
	"github.com/username/contact-assistant/internal/config"
	"github.com/username/contact-assistant/internal/export"
	"github.com/username/contact-assistant/internal/storage"
	"github.com/username/contact-assistant/internal/view"
	"github.com/username/contact-assistant/pkg/dateutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "contact-assistant",
		Short: "Personal contact manager",
		Long:  "Console assistant that stores contacts with phone numbers and birthdays and reports upcoming birthdays",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(birthdaysCmd())
	rootCmd.AddCommand(exportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runCmd starts the interactive assistant loop.
func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive assistant",
		RunE: func(cmd *cobra.Command, args []string) error {
			book, store, err := loadBook()
			if err != nil {
				return err
			}
			consoleView := view.NewConsoleView(os.Stdin, os.Stdout)
			assistant := bot.New(book, store, consoleView, logger)
			return assistant.Run()
		},
	}
}

// birthdaysCmd prints the upcoming-birthday report without entering
// the interactive loop.
func birthdaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "birthdays",
		Short: "Show contacts with birthdays in the next 7 days",
		RunE: func(cmd *cobra.Command, args []string) error {
			book, _, err := loadBook()
			if err != nil {
				return err
			}
			upcoming := book.UpcomingBirthdays(dateutil.Today())
			if len(upcoming) == 0 {
				fmt.Println("No upcoming birthdays in the next 7 days.")
				return nil
			}
			for _, entry := range upcoming {
				fmt.Println(entry)
			}
			return nil
		},
	}
}

// exportCmd writes all contacts as vCards to the given file, or to
// stdout when no file is given.
func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file.vcf]",
		Short: "Export all contacts as vCards",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, _, err := loadBook()
			if err != nil {
				return err
			}
			out := os.Stdout
			if len(args) == 1 {
				file, err := os.Create(args[0])
				if err != nil {
					return fmt.Errorf("failed to create export file: %w", err)
				}
				defer file.Close()
				out = file
			}
			return export.WriteVCards(out, book)
		},
	}
}

// loadBook loads configuration and the persisted address book.
func loadBook() (*addressbook.AddressBook, *storage.Store, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	store := storage.NewStore(cfg.Storage.File, logger)
	book, err := store.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load address book: %w", err)
	}
	return book, store, nil
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Parse log level
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
