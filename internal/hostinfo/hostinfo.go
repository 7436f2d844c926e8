// Package hostinfo reports the identity of the host the process runs on.
package hostinfo

import (
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

var (
	hostnameOnce sync.Once
	hostname     string

	ec2Once sync.Once
	ec2ID   string
)

// Hostname returns the OS hostname, cached after the first call, falling
// back to "localhost" when it cannot be determined.
func Hostname() string {
	hostnameOnce.Do(func() {
		h, err := os.Hostname()
		if err != nil || h == "" {
			h = "localhost"
		}
		hostname = h
	})
	return hostname
}

// instanceIDURL is the EC2 instance metadata endpoint.
const instanceIDURL = "http://169.254.169.254/latest/meta-data/instance-id"

// EC2InstanceID returns the EC2 instance id from the metadata endpoint,
// cached after the first call, or "" when the process is not running on
// EC2. The first call may block for up to one second.
func EC2InstanceID() string {
	ec2Once.Do(func() {
		ec2ID = fetchInstanceID(instanceIDURL)
	})
	return ec2ID
}

func fetchInstanceID(url string) string {
	client := &http.Client{Timeout: time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ""
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 256))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(body))
}
