package model

// DeviceStatus is the session state of a device linked to an account.
type DeviceStatus string

const (
	DeviceActive  DeviceStatus = "Active"
	DeviceBlocked DeviceStatus = "Blocked"
)

// Device is a device that has accessed, or tried to access, the account.
type Device struct {
	Name     string       `json:"name"`
	Location string       `json:"location"`
	Status   DeviceStatus `json:"status"`
	IP       string       `json:"ip"`
}

// LogisticsAnalysis summarizes delivery verification for the account's shop.
type LogisticsAnalysis struct {
	Status                 string `json:"status"`
	AlertMessage           string `json:"alert_message"`
	DeliveryScore          int    `json:"delivery_score"`
	UntrackedOrdersPercent int    `json:"untracked_orders_percent"`
}

// SecuritySnapshot is the account security posture.
type SecuritySnapshot struct {
	Status          string            `json:"status"`
	Devices         []Device          `json:"devices"`
	Logistics       LogisticsAnalysis `json:"logistics"`
	SecurityScore   int               `json:"security_score"`
	BlockedAttempts int               `json:"blocked_attempts"`
}

// BlockedDevices returns the devices whose access was refused.
func (s SecuritySnapshot) BlockedDevices() []Device {
	out := make([]Device, 0)
	for _, d := range s.Devices {
		if d.Status == DeviceBlocked {
			out = append(out, d)
		}
	}
	return out
}
