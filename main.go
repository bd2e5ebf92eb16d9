package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"koshi-chime.dev/internal/app"
	"koshi-chime.dev/internal/config"
	"koshi-chime.dev/internal/midiout"
	"koshi-chime.dev/internal/sensor"
)

var (
	flagDemo          bool
	flagSerial        string
	flagBaud          int
	flagBLE           bool
	flagBLEName       string
	flagMIDI          string
	flagChannel       uint8
	flagChime         string
	flagResetOnSwitch bool
	flagLogFile       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "koshi",
		Short: "Koshi - tilt-driven chime simulator with a terminal display and MIDI output",
		Long: `Koshi simulates a koshi chime: a ball rolling inside a circular chamber
ringed by 8 tuned rods. Tilt input drives the ball; rod strikes emit MIDI
note events and light up the rods on a circular ASCII display.

Tilt can come from a serial IMU (--sensor), a BLE IMU beacon (--ble), or a
built-in demo source (--demo). Without --midi, note events go to the log.`,
		RunE: run,
	}

	rootCmd.Flags().BoolVar(&flagDemo, "demo", false, "Run with a simulated tilt source (no hardware required)")
	rootCmd.Flags().StringVar(&flagSerial, "sensor", "", "Serial IMU device streaming 'ax ay' lines (e.g. /dev/ttyACM0)")
	rootCmd.Flags().IntVar(&flagBaud, "baud", config.SerialBaud, "Serial IMU baud rate")
	rootCmd.Flags().BoolVar(&flagBLE, "ble", false, "Read tilt from a BLE IMU beacon's advertisements")
	rootCmd.Flags().StringVar(&flagBLEName, "ble-name", config.BLEScanName, "BLE beacon local name to listen for")
	rootCmd.Flags().StringVar(&flagMIDI, "midi", "", "MIDI output port name substring (empty logs note events instead)")
	rootCmd.Flags().Uint8Var(&flagChannel, "channel", 0, "MIDI channel (0-15)")
	rootCmd.Flags().StringVar(&flagChime, "chime", "", "Initial tuning: Terra, Aqua, Aria or Ignis")
	rootCmd.Flags().BoolVar(&flagResetOnSwitch, "reset-on-switch", true, "Re-center the ball on tuning switch and calibration")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write structured logs to this file (TUI owns the terminal)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log, closeLog, err := newLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	emitter, outName, err := newEmitter(log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n\n", err)
		fmt.Fprintln(os.Stderr, "List your MIDI outputs with e.g. 'aconnect -l' and pass a name")
		fmt.Fprintln(os.Stderr, "substring via --midi, or omit --midi to log note events instead.")
		return err
	}
	defer emitter.Close()

	source, err := newSource(log)
	if err != nil {
		return err
	}

	model := app.New(app.Options{
		Source:        source,
		Emitter:       emitter,
		OutName:       outName,
		Variant:       flagChime,
		ResetOnSwitch: flagResetOnSwitch,
		Log:           log,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithFPS(config.TickRate),
	)

	// Start the tilt source with a reference to the tea program
	if err := model.StartSource(p); err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n\n", err)
		if flagBLE {
			fmt.Fprintln(os.Stderr, "BLE scanning requires elevated permissions.")
			fmt.Fprintln(os.Stderr, "Try one of:")
			fmt.Fprintln(os.Stderr, "  sudo ./koshi --ble")
			fmt.Fprintln(os.Stderr, "  sudo setcap cap_net_admin+ep ./koshi")
		}
		fmt.Fprintln(os.Stderr, "  ./koshi --demo    (demo mode, no hardware needed)")
		return err
	}

	_, err = p.Run()
	return err
}

// newLogger builds the file-backed logrus logger. Without --log-file all
// logging is discarded: the TUI owns stdout and stderr.
func newLogger(path string) (*logrus.Logger, func(), error) {
	log := logrus.New()
	if path == "" {
		log.SetOutput(io.Discard)
		return log, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	log.SetOutput(f)
	log.SetLevel(logrus.DebugLevel)
	return log, func() { _ = f.Close() }, nil
}

func newEmitter(log *logrus.Logger) (midiout.Emitter, string, error) {
	if flagMIDI == "" {
		return midiout.NewLogEmitter(log), "log", nil
	}
	port, err := midiout.OpenPort(flagMIDI, flagChannel, log)
	if err != nil {
		return nil, "", err
	}
	return port, port.PortName(), nil
}

func newSource(log *logrus.Logger) (sensor.Source, error) {
	switch {
	case flagSerial != "":
		return sensor.NewSerialSource(flagSerial, flagBaud, log), nil
	case flagBLE:
		return sensor.NewBLESource(flagBLEName, log), nil
	case flagDemo:
		return sensor.NewMockSource(), nil
	default:
		return nil, fmt.Errorf("no tilt source selected: pass --sensor, --ble or --demo")
	}
}
