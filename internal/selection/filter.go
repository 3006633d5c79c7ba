package selection

import "tsel/internal/platform"

// structuralFilter is the post-discovery filter the launcher applies once
// per node, top-down. Containers that pass the tag predicate are let
// through so their runtime-registered children can be discovered later.
// Statically-known leaf tests are captured into the shared collector and
// nevertheless reported as Excluded: capture happens through the side
// channel, so keeping leaves out of the execution plan prevents them from
// re-triggering the execution observer.
type structuralFilter struct {
	tags    tagPredicate
	methods methodFilter
	out     *collector
}

func (f *structuralFilter) Apply(d *platform.Descriptor) platform.FilterResult {
	if !f.tags(d) {
		// Structural exclusion: the launcher prunes the whole subtree.
		return platform.Excluded
	}

	if d.MayRegisterTests {
		return platform.Included
	}

	if d.IsTest() && f.methods.allows(d.Identifier) {
		f.out.add(d.Identifier)
	}
	return platform.Excluded
}
