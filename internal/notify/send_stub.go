//go:build !linux

package notify

import "fmt"

func send(title, body string, opts sendOptions) error {
	return fmt.Errorf("notifications are not supported on this platform")
}
