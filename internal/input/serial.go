package input

import (
	"fmt"

	"github.com/charmbracelet/log"
	"go.bug.st/serial"

	"github.com/vovakirdan/joysnake/internal/config"
)

// OpenSerial opens the configured serial port as a Device. Reads on the port
// time out after cfg.ReadTimeout so polling never stalls a tick.
func OpenSerial(cfg config.DeviceConfig, logger *log.Logger) (*Device, error) {
	port, err := serial.Open(cfg.Port, &serial.Mode{BaudRate: cfg.BaudRate})
	if err != nil {
		return nil, fmt.Errorf("input: open %s: %w", cfg.Port, err)
	}
	if err := port.SetReadTimeout(cfg.ReadTimeout()); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("input: set read timeout on %s: %w", cfg.Port, err)
	}

	dev := NewDevice(port, cfg, logger)
	dev.name = cfg.Port
	return dev, nil
}

// ListPorts returns the serial ports present on this machine.
func ListPorts() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("input: list ports: %w", err)
	}
	return ports, nil
}
