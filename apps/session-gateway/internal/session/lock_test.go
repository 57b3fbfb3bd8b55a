package session

import (
	"sync"
	"testing"
)

func TestKeyedMutexSerializesSameKey(t *testing.T) {
	k := newKeyedMutex()

	var (
		wg      sync.WaitGroup
		counter int
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := k.Lock("alice")
			counter++
			unlock()
		}()
	}
	wg.Wait()

	if counter != 100 {
		t.Errorf("counter = %d, want 100", counter)
	}
	if n := k.size(); n != 0 {
		t.Errorf("size() = %d, want 0", n)
	}
}

func TestKeyedMutexIndependentKeys(t *testing.T) {
	k := newKeyedMutex()

	unlockA := k.Lock("alice")
	// 別キーは待たずに取得できる
	unlockB := k.Lock("bob")
	if n := k.size(); n != 2 {
		t.Errorf("size() = %d, want 2", n)
	}
	unlockB()
	unlockA()

	if n := k.size(); n != 0 {
		t.Errorf("size() = %d, want 0", n)
	}
}
