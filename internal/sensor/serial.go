package sensor

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"go.bug.st/serial"
)

// SerialSource reads tilt samples from an IMU attached over a serial port.
// The device streams one sample per line as two whitespace- or
// comma-separated floats in g units: "0.12 -0.34".
type SerialSource struct {
	program *tea.Program
	device  string
	baud    int
	port    serial.Port
	running bool
	log     *logrus.Logger
}

// NewSerialSource creates a source for the named device, e.g. /dev/ttyACM0.
func NewSerialSource(device string, baud int, log *logrus.Logger) *SerialSource {
	return &SerialSource{device: device, baud: baud, log: log}
}

func (s *SerialSource) Name() string { return s.device }

// Start opens the port and begins streaming samples in a goroutine.
func (s *SerialSource) Start(p *tea.Program) error {
	s.program = p

	port, err := serial.Open(s.device, &serial.Mode{BaudRate: s.baud})
	if err != nil {
		return fmt.Errorf("failed to open serial device %s: %w", s.device, err)
	}
	s.port = port
	s.running = true

	s.log.WithFields(logrus.Fields{"device": s.device, "baud": s.baud}).Info("serial sensor opened")

	go s.loop()
	return nil
}

func (s *SerialSource) loop() {
	scanner := bufio.NewScanner(s.port)
	for scanner.Scan() {
		if !s.running {
			return
		}
		sample, ok := parseSampleLine(scanner.Text())
		if !ok {
			continue
		}
		if s.program != nil {
			s.program.Send(Msg(sample))
		}
	}
	if err := scanner.Err(); err != nil && s.running {
		s.log.WithError(err).Warn("serial sensor read failed")
		if s.program != nil {
			s.program.Send(ErrorMsg{Err: err})
		}
	}
}

// parseSampleLine decodes "ax ay" (or "ax,ay"). Trailing fields, such as a
// z axis or a temperature column, are ignored.
func parseSampleLine(line string) (Sample, bool) {
	line = strings.TrimSpace(strings.ReplaceAll(line, ",", " "))
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Sample{}, false
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Sample{}, false
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Sample{}, false
	}
	return Sample{X: x, Y: y}, true
}

// Stop halts the reader and closes the port.
func (s *SerialSource) Stop() {
	s.running = false
	if s.port != nil {
		_ = s.port.Close()
		s.port = nil
	}
}
