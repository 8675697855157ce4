package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/joysnake/internal/input"
)

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List serial ports",
	Long: `List the serial ports present on this machine. Pass one of them to
'joysnake play --port' or set device.port in the config file.`,
	Args: cobra.NoArgs,
	Run:  runPorts,
}

func runPorts(cmd *cobra.Command, args []string) {
	ports, err := input.ListPorts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(ports) == 0 {
		fmt.Println("No serial ports found.")
		fmt.Println()
		fmt.Println("Play with the keyboard: 'joysnake play --keyboard'")
		return
	}

	fmt.Println("Serial ports:")
	fmt.Println()
	for _, p := range ports {
		fmt.Printf("  %s\n", p)
	}
}
