package di

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct{ name string }

func TestContainerRegisterAndResolve(t *testing.T) {
	c := NewContainer()
	svc := &fakeService{name: "splitter"}
	c.Register(ServiceSegmentation, svc)

	assert.True(t, c.Has(ServiceSegmentation))
	assert.False(t, c.Has(ServiceMetrics))

	got, err := Resolve[*fakeService](c, ServiceSegmentation)
	require.NoError(t, err)
	assert.Same(t, svc, got)
}

func TestResolveErrors(t *testing.T) {
	c := NewContainer()

	_, err := Resolve[*fakeService](c, "missing")
	assert.ErrorContains(t, err, "missing")

	c.Register("wrong", "not a service")
	_, err = Resolve[*fakeService](c, "wrong")
	assert.ErrorContains(t, err, "wrong")
}

func TestContainersAreIsolated(t *testing.T) {
	a := NewContainer()
	b := NewContainer()
	a.Register(ServiceMetrics, 1)

	assert.Nil(t, b.Get(ServiceMetrics))
	assert.Equal(t, []string{ServiceMetrics}, a.GetNames())
}
