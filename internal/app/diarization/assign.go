package diarization

import (
	"math"
	"strings"

	"lucidscript/internal/app/model"
)

// AssignSpeakers labels every segment with the speaker whose turn overlaps
// it the most. Without turns every segment belongs to DefaultSpeaker.
func AssignSpeakers(segments []model.Segment, turns []model.SpeakerTurn) []model.LabeledSegment {
	labeled := make([]model.LabeledSegment, 0, len(segments))
	for _, seg := range segments {
		best, overlap := DefaultSpeaker, 0.0
		for _, turn := range turns {
			ov := math.Max(0, math.Min(seg.End, turn.End)-math.Max(seg.Start, turn.Start))
			if ov > overlap {
				best, overlap = turn.Speaker, ov
			}
		}
		labeled = append(labeled, model.LabeledSegment{
			Speaker: best,
			Start:   seg.Start,
			End:     seg.End,
			Text:    strings.TrimSpace(seg.Text),
		})
	}
	return labeled
}
