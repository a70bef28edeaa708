package common

import "errors"

// ErrorSessionIncomplete marks persisted session state that is missing one
// of its three keys and must be treated as absent.
var ErrorSessionIncomplete = errors.New("incomplete persisted session")
