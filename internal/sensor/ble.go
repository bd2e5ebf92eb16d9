package sensor

import (
	"encoding/binary"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"tinygo.org/x/bluetooth"
)

// BLESource reads tilt samples broadcast by an IMU beacon in BLE
// advertisements. The beacon packs two little-endian int16 axis values in
// milli-g into its manufacturer data payload; no connection is made.
type BLESource struct {
	adapter   *bluetooth.Adapter
	program   *tea.Program
	localName string
	running   bool
	log       *logrus.Logger
}

// NewBLESource creates a source that listens for advertisements whose local
// name contains localName (case-insensitive).
func NewBLESource(localName string, log *logrus.Logger) *BLESource {
	return &BLESource{
		adapter:   bluetooth.DefaultAdapter,
		localName: localName,
		log:       log,
	}
}

func (s *BLESource) Name() string { return "ble:" + s.localName }

// Start enables the adapter and begins scanning in a goroutine. Discovered
// samples are sent as tea messages via program.Send().
func (s *BLESource) Start(p *tea.Program) error {
	s.program = p

	if err := s.adapter.Enable(); err != nil {
		return fmt.Errorf("failed to enable BLE adapter: %w (try running with sudo or setcap cap_net_admin+ep)", err)
	}

	s.running = true
	go func() {
		err := s.adapter.Scan(func(adapter *bluetooth.Adapter, result bluetooth.ScanResult) {
			if !s.running {
				return
			}
			if !strings.Contains(strings.ToLower(result.LocalName()), strings.ToLower(s.localName)) {
				return
			}
			for _, md := range result.ManufacturerData() {
				sample, ok := decodeIMUAdvert(md.Data)
				if !ok {
					continue
				}
				if s.program != nil {
					s.program.Send(Msg(sample))
				}
				break
			}
		})
		if err != nil && s.running {
			s.log.WithError(err).Warn("BLE scan stopped")
			if s.program != nil {
				s.program.Send(ErrorMsg{Err: err})
			}
		}
	}()

	return nil
}

// decodeIMUAdvert unpacks two little-endian int16 milli-g axis values.
func decodeIMUAdvert(data []byte) (Sample, bool) {
	if len(data) < 4 {
		return Sample{}, false
	}
	x := int16(binary.LittleEndian.Uint16(data[0:2]))
	y := int16(binary.LittleEndian.Uint16(data[2:4]))
	return Sample{
		X: float64(x) / 1000.0,
		Y: float64(y) / 1000.0,
	}, true
}

// Stop halts the BLE scan.
func (s *BLESource) Stop() {
	s.running = false
	_ = s.adapter.StopScan()
}
