package interfaces

import "context"

// ISerialAllocator hands out order serial sequence numbers. Sequences restart
// every year and are never reused within a year.
type ISerialAllocator interface {
	NextOrderSerial(ctx context.Context, year int) (int64, error)
}
