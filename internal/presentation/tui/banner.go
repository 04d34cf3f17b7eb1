package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for the mdp CLI.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Subtle gradient, cool blues into violet
	s1 := termenv.String("                 _       ").Foreground(p.Color("#38bdf8"))
	s2 := termenv.String("  _ __ ___    __| |_ __  ").Foreground(p.Color("#60a5fa"))
	s3 := termenv.String(" | '_ ` _ \\  / _` | '_ \\ ").Foreground(p.Color("#818cf8"))
	s4 := termenv.String(" | | | | | || (_| | |_) |").Foreground(p.Color("#a78bfa"))
	s5 := termenv.String(" |_| |_| |_| \\__,_| .__/ ").Foreground(p.Color("#c084fc"))
	s6 := termenv.String("                  |_|    ").Foreground(p.Color("#e879f9"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Println()
}
