package crt

// InvalidCapacity - Custom error to inform that a table was requested with a capacity less than 1
type InvalidCapacity struct {
	msg string
}

// Error - Used to notify that capacity is invalid
func (E InvalidCapacity) Error() string {
	if E.msg == "" {
		return "capacity must be a positive value higher than 0 (zero)"
	}
	return E.msg
}

// DuplicateKey - Custom error to inform that the key is already occupying a slot in the table
type DuplicateKey struct {
	msg string
}

// Error - Used to notify that the key already exists
func (E DuplicateKey) Error() string {
	if E.msg == "" {
		return "duplicate key"
	}
	return E.msg
}

// TableFull - Custom error to inform that the table is full and can't take more records
type TableFull struct {
	msg string
}

// Error - Used to notify that the table is full
func (E TableFull) Error() string {
	if E.msg == "" {
		return "table full"
	}
	return E.msg
}

// KeyNotFound - Custom error to inform that no record was found for the key
type KeyNotFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E KeyNotFound) Error() string {
	if E.msg == "" {
		return "key not found"
	}
	return E.msg
}
