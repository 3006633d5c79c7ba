package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tsel/internal/platform"
)

type recordingListener struct {
	started []string
}

func (l *recordingListener) ExecutionStarted(id platform.Identifier) {
	l.started = append(l.started, id.UniqueID)
}

type recordingInterceptor struct {
	kinds   []platform.InvocationKind
	proceed bool
}

func (r *recordingInterceptor) Intercept(inv platform.Invocation) {
	r.kinds = append(r.kinds, inv.Kind)
	if r.proceed {
		inv.Proceed()
	}
}

// filterFunc adapts a function to platform.DiscoveryFilter.
type filterFunc func(d *platform.Descriptor) platform.FilterResult

func (f filterFunc) Apply(d *platform.Descriptor) platform.FilterResult { return f(d) }

func container(id string, children ...*platform.Descriptor) *platform.Descriptor {
	return &platform.Descriptor{
		Identifier: platform.Identifier{
			UniqueID: id,
			Kind:     platform.KindContainer,
		},
		MayRegisterTests: true,
		Children:         children,
	}
}

func leaf(id string) *platform.Descriptor {
	return &platform.Descriptor{
		Identifier: platform.Identifier{
			UniqueID: id,
			Kind:     platform.KindTest,
		},
	}
}

func autoRegRequest(class string) platform.Request {
	return platform.Request{
		Selector:     platform.Class{Name: class},
		ConfigParams: map[string]string{platform.AutoRegistrationParam: "true"},
	}
}

func TestEngine_Register(t *testing.T) {
	e := New(nil)

	require.NoError(t, e.Register(&Suite{Class: platform.Class{Name: "A"}, Root: container("[class:A]")}))

	err := e.Register(&Suite{Class: platform.Class{Name: "A"}, Root: container("[class:A]")})
	assert.Error(t, err, "duplicate class registration must fail")

	assert.Error(t, e.Register(&Suite{}), "a suite needs a class name")
	assert.Len(t, e.Suites(), 1)
}

func TestEngine_UnknownSelector(t *testing.T) {
	e := New(nil)
	err := e.Execute(autoRegRequest("Missing"), &recordingListener{})
	assert.Error(t, err)
}

func TestEngine_ExecutesPlanTopDown(t *testing.T) {
	e := New(nil)
	require.NoError(t, e.Register(&Suite{
		Class: platform.Class{Name: "A"},
		Root:  container("[class:A]", leaf("t1"), container("c1", leaf("t2"))),
	}))

	listener := &recordingListener{}
	require.NoError(t, e.Execute(autoRegRequest("A"), listener))

	assert.Equal(t, []string{"[class:A]", "t1", "c1", "t2"}, listener.started)
}

func TestEngine_FilterPrunesSubtree(t *testing.T) {
	e := New(nil)
	require.NoError(t, e.Register(&Suite{
		Class: platform.Class{Name: "A"},
		Root:  container("[class:A]", container("pruned", leaf("hidden")), leaf("kept")),
	}))

	listener := &recordingListener{}
	req := autoRegRequest("A")
	req.Filter = filterFunc(func(d *platform.Descriptor) platform.FilterResult {
		if d.UniqueID == "pruned" {
			return platform.Excluded
		}
		return platform.Included
	})
	require.NoError(t, e.Execute(req, listener))

	assert.Equal(t, []string{"[class:A]", "kept"}, listener.started)
}

func TestEngine_FilterSeesNodesTopDown(t *testing.T) {
	e := New(nil)
	require.NoError(t, e.Register(&Suite{
		Class: platform.Class{Name: "A"},
		Root:  container("root", container("mid", leaf("deep"))),
	}))

	var applied []string
	req := autoRegRequest("A")
	req.Filter = filterFunc(func(d *platform.Descriptor) platform.FilterResult {
		applied = append(applied, d.UniqueID)
		return platform.Included
	})
	require.NoError(t, e.Execute(req, nil))

	assert.Equal(t, []string{"root", "mid", "deep"}, applied)
}

func TestEngine_FactoryRegistersDynamicTests(t *testing.T) {
	root := container("root")
	root.Factory = func(r platform.Registrar) {
		for i := 1; i <= 2; i++ {
			r.Register(leaf(fmt.Sprintf("dyn-%d", i)))
		}
	}

	t.Run("with auto-registration", func(t *testing.T) {
		e := New(nil)
		require.NoError(t, e.Register(&Suite{Class: platform.Class{Name: "A"}, Root: root}))

		listener := &recordingListener{}
		require.NoError(t, e.Execute(autoRegRequest("A"), listener))
		assert.Equal(t, []string{"root", "dyn-1", "dyn-2"}, listener.started)
	})

	t.Run("without auto-registration", func(t *testing.T) {
		e := New(nil)
		require.NoError(t, e.Register(&Suite{Class: platform.Class{Name: "A"}, Root: root}))

		listener := &recordingListener{}
		require.NoError(t, e.Execute(platform.Request{Selector: platform.Class{Name: "A"}}, listener))
		assert.Equal(t, []string{"root"}, listener.started, "factories must not run without the config param")
	})
}

func TestEngine_InterceptorReceivesInvocationKinds(t *testing.T) {
	tmpl := leaf("tmpl")
	tmpl.Template = true
	root := container("root", leaf("plain"), tmpl)
	root.Factory = func(r platform.Registrar) {
		r.Register(leaf("dyn"))
	}

	e := New(&recordingInterceptor{proceed: true})
	interceptor := e.interceptor.(*recordingInterceptor)
	require.NoError(t, e.Register(&Suite{Class: platform.Class{Name: "A"}, Root: root}))

	require.NoError(t, e.Execute(autoRegRequest("A"), nil))

	assert.Equal(t, []platform.InvocationKind{
		platform.InvokeTestMethod,
		platform.InvokeTestTemplate,
		platform.InvokeTestFactory,
		platform.InvokeDynamicTest,
	}, interceptor.kinds)
}

func TestEngine_SkippedFactoryRegistersNothing(t *testing.T) {
	root := container("root")
	root.Factory = func(r platform.Registrar) {
		r.Register(leaf("dyn"))
	}

	e := New(&recordingInterceptor{proceed: false})
	require.NoError(t, e.Register(&Suite{Class: platform.Class{Name: "A"}, Root: root}))

	listener := &recordingListener{}
	require.NoError(t, e.Execute(autoRegRequest("A"), listener))
	assert.Equal(t, []string{"root"}, listener.started)
}

func TestEngine_DisabledDynamicRegistrationIgnored(t *testing.T) {
	root := container("root")
	root.Factory = func(r platform.Registrar) {
		disabled := leaf("disabled")
		disabled.Disabled = true
		r.Register(disabled)
		r.Register(leaf("enabled"))
	}

	e := New(nil)
	require.NoError(t, e.Register(&Suite{Class: platform.Class{Name: "A"}, Root: root}))

	listener := &recordingListener{}
	require.NoError(t, e.Execute(autoRegRequest("A"), listener))
	assert.Equal(t, []string{"root", "enabled"}, listener.started)
}
