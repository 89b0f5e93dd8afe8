package element

// buildTrains attaches to each Cue and Slug in body the sequence of
// follower break descriptors needed for page-fit arithmetic (spec.md
// §4.2's build_trains post-pass).
func buildTrains(body *Element) {
	children := body.Children
	for i, el := range children {
		switch el.Tag {
		case TagCue:
			el.Train = cueFollowerBreaks(children, i+1)
		case TagSlug:
			if i+1 >= len(children) {
				continue
			}
			next := children[i+1]
			train := []BreakType{next.Break}
			if next.Tag == TagCue {
				// The cue's own Train is not built yet (it comes later in
				// this loop), so collect its followers directly.
				train = append(train, cueFollowerBreaks(children, i+2)...)
			}
			el.Train = train
		}
	}
}

// cueFollowerBreaks collects the break descriptors of the D/Dir elements
// immediately following a Cue, stopping at the first other element.
func cueFollowerBreaks(children []*Element, from int) []BreakType {
	var train []BreakType
	for j := from; j < len(children); j++ {
		c := children[j]
		if c.Tag != TagD && c.Tag != TagDir {
			break
		}
		train = append(train, c.Break)
	}
	return train
}

// markSceneEndings flags the last content element of each scene (spec.md
// §4.2's mark_scene_endings post-pass): three forward scans over the body,
// one for the initial marking at positions preceding each Slug (and at
// the end of the body, for the final scene), one to propagate
// D/Dir -> Cue, and one to propagate P -> Slug.
//
// Guards n == 0: an empty body has nothing to mark (spec.md §9's open
// question about an off-by-one on an empty body).
func markSceneEndings(body *Element) {
	children := body.Children
	n := len(children)
	if n == 0 {
		return
	}

	// The final element of the body ends the last scene even if no Slug
	// ever follows it.
	children[n-1].AtSceneEnd = true

	for i, el := range children {
		if el.Tag != TagSlug {
			continue
		}
		for j := i - 1; j >= 0; j-- {
			if children[j].Tag == TagHead {
				continue
			}
			children[j].AtSceneEnd = true
			break
		}
	}

	for i, el := range children {
		if el.Tag != TagD && el.Tag != TagDir {
			continue
		}
		if !el.AtSceneEnd {
			continue
		}
		for j := i - 1; j >= 0; j-- {
			c := children[j]
			if c.Tag == TagD || c.Tag == TagDir {
				continue
			}
			if c.Tag == TagCue {
				c.AtSceneEnd = true
			}
			break
		}
	}

	for i, el := range children {
		if el.Tag == TagP && el.AtSceneEnd && i > 0 && children[i-1].Tag == TagSlug {
			children[i-1].AtSceneEnd = true
		}
	}
}
