package servicemanager

// ServiceStatus describes the systemd unit state.
type ServiceStatus string

const (
	Active   ServiceStatus = "active"
	Inactive ServiceStatus = "inactive"
	Failed   ServiceStatus = "failed"
)

// ServiceManager wraps the service operations the installation steps
// perform.
type ServiceManager interface {
	EnableService(serviceName string) error
	EnableServiceNow(serviceName string) error
	StartService(serviceName string) error
	CheckServiceStatus(serviceName string) (ServiceStatus, error)
	IsServiceEnabled(serviceName string) (bool, error)
}
