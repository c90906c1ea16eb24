package config

import "errors"

// validate checks that all mandatory client settings are present.
func (c *ClientConfig) validate() error {
	var err error

	if c.Remote.BaseURL == "" {
		err = errors.Join(err, ErrNoRemoteBaseURL)
	}
	if c.Storage.DB.DSN == "" {
		err = errors.Join(err, ErrNoDatabaseDSN)
	}

	return err
}
