package manifest

import (
	"fmt"

	"tsel/internal/engine"
	"tsel/internal/platform"
)

// Build turns the manifest into engine suites. Every declared class gets
// its own suite; nested classes are additionally embedded as containers
// of their enclosing class, which is the only path their tests are
// selected through.
func Build(m *Manifest) []*engine.Suite {
	var suites []*engine.Suite
	for i := range m.Suites {
		suites = append(suites, buildSuite(&m.Suites[i], "")...)
	}
	return suites
}

func buildSuite(s *SuiteSpec, enclosing string) []*engine.Suite {
	suites := []*engine.Suite{{
		Class: platform.Class{Name: s.Class, Enclosing: enclosing},
		Root:  buildClassTree(s),
	}}
	for i := range s.Nested {
		suites = append(suites, buildSuite(&s.Nested[i], s.Class)...)
	}
	return suites
}

func buildClassTree(s *SuiteSpec) *platform.Descriptor {
	root := &platform.Descriptor{
		Identifier: platform.Identifier{
			UniqueID:    fmt.Sprintf("[class:%s]", s.Class),
			DisplayName: s.Class,
			Kind:        platform.KindContainer,
			Tags:        s.Tags,
		},
		MayRegisterTests: true,
	}

	for i := range s.Tests {
		root.Children = append(root.Children, buildTest(s.Class, root.UniqueID, &s.Tests[i]))
	}
	for i := range s.Containers {
		root.Children = append(root.Children, buildContainer(s.Class, root.UniqueID, &s.Containers[i]))
	}
	for i := range s.Nested {
		root.Children = append(root.Children, buildClassTree(&s.Nested[i]))
	}
	return root
}

func buildTest(class, parentID string, t *TestSpec) *platform.Descriptor {
	var source *platform.MethodSource
	if t.Method != "" {
		source = &platform.MethodSource{Class: class, Method: t.Method}
	}
	return &platform.Descriptor{
		Identifier: platform.Identifier{
			UniqueID:    fmt.Sprintf("%s/[test:%s]", parentID, t.Name),
			DisplayName: t.Name,
			Kind:        platform.KindTest,
			Tags:        t.Tags,
			Source:      source,
		},
		Template: t.Template,
		Disabled: t.Disabled,
	}
}

func buildContainer(class, parentID string, c *ContainerSpec) *platform.Descriptor {
	d := &platform.Descriptor{
		Identifier: platform.Identifier{
			UniqueID:    fmt.Sprintf("%s/[container:%s]", parentID, c.Name),
			DisplayName: c.Name,
			Kind:        platform.KindContainer,
			Tags:        c.Tags,
		},
		MayRegisterTests: true,
	}

	for i := range c.Tests {
		d.Children = append(d.Children, buildTest(class, d.UniqueID, &c.Tests[i]))
	}
	for i := range c.Containers {
		d.Children = append(d.Children, buildContainer(class, d.UniqueID, &c.Containers[i]))
	}

	if c.Dynamic > 0 {
		count := c.Dynamic
		containerID := d.UniqueID
		name := c.Name
		d.Factory = func(r platform.Registrar) {
			for i := 1; i <= count; i++ {
				r.Register(&platform.Descriptor{
					Identifier: platform.Identifier{
						UniqueID:    fmt.Sprintf("%s/[dynamic-test:%s-%d]", containerID, name, i),
						DisplayName: fmt.Sprintf("%s[%d]", name, i),
						Kind:        platform.KindTest,
					},
				})
			}
		}
	}
	return d
}
