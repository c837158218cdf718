//go:build linux

// Package ioctl wraps the ioctl system call.
package ioctl

import (
	"fmt"
	"syscall"
)

// Mode is the data direction encoded in a command.
type Mode uint8

// Modes
const (
	None Mode = iota
	Write
	Read
)

// Command to be sent over ioctl. Legacy commands, such as the fbdev ones, carry
// no mode or size.
type Command uintptr

// Mode returns the encoded data direction.
func (c Command) Mode() Mode {
	return Mode(c >> 30 & 0x03)
}

// Size returns the encoded argument size.
func (c Command) Size() int {
	return int(c >> 16 & 0x3fff)
}

func (c Command) String() string {
	var str string
	if c.Mode()&Write > 0 {
		str += " write"
	}
	if c.Mode()&Read > 0 {
		str += " read"
	}
	return fmt.Sprintf("ioctl%s (%d bytes) 0x%04x", str, c.Size(), uintptr(c&0xffff))
}

// Call does a plain ioctl system call.
func Call(fd uintptr, command Command, arg uintptr) error {
	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, uintptr(command), arg)
	if errno != 0 {
		return fmt.Errorf("%s failed: %w", command, errno)
	}
	return nil
}
