package credstore

import "errors"

var (
	SecurityInitErr  = errors.New("credential store security initialisation failed")
	MasterKeySizeErr = errors.New("master key has wrong size")
)
