package bloomtesting

// BaseHasher matches the filter's hash kernel interface.
type BaseHasher interface {
	BaseHashes(data []byte) (h1 uint64, h2 uint64)
}

type TestCallCounter struct {
	MethodCalls map[string]int
}

func (r *TestCallCounter) IncMethodCall(name string) int {
	if r.MethodCalls == nil {
		r.MethodCalls = make(map[string]int)
	}
	r.MethodCalls[name]++
	return r.MethodCalls[name]
}

func (r *TestCallCounter) Reset() {
	r.MethodCalls = make(map[string]int)
}

func (r *TestCallCounter) MethodCallCount(name string) int {
	return r.MethodCalls[name]
}

// CountingKernel wraps a kernel and counts BaseHashes calls.
type CountingKernel struct {
	TestCallCounter
	Inner BaseHasher
}

func (k *CountingKernel) BaseHashes(data []byte) (uint64, uint64) {
	k.IncMethodCall("BaseHashes")
	return k.Inner.BaseHashes(data)
}
