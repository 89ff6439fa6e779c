package provisioner

type ProvisionerError string

func (e ProvisionerError) Error() string {
	return string(e)
}

const (
	ErrNilConfig   ProvisionerError = "config cannot be nil"
	ErrNilPlatform ProvisionerError = "platform cannot be nil"
	ErrNilInput    ProvisionerError = "input cannot be nil"
)
