package typespec

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/praetorian-inc/anno/pkg/codec"
	"github.com/praetorian-inc/anno/pkg/logging"
	"github.com/praetorian-inc/anno/pkg/types"
)

// Compile parses tokens and walks data with the resulting plan.
func Compile(tokens []string, order codec.ByteOrder, data []byte) ([]types.Annotation, error) {
	plan, err := Parse(tokens)
	if err != nil {
		return nil, err
	}
	return plan.Walk(order, data)
}

// Walk decodes data left to right and returns one annotation per scalar.
//
// When a scalar runs out of data, the annotations decoded so far are returned
// together with a trailing error annotation covering the bytes that remain,
// and an *InsufficientDataError. A skip that runs out of data returns only a
// *SkipRangeError.
func (p Plan) Walk(order codec.ByteOrder, data []byte) ([]types.Annotation, error) {
	log := logging.Logger()
	annotations := make([]types.Annotation, 0, len(p.Steps))
	cursor := 0

	for _, step := range p.Steps {
		if step.IsSkip() {
			if cursor+step.Skip > len(data) {
				return nil, &SkipRangeError{Bytes: step.Skip, Offset: cursor, Len: len(data)}
			}
			log.Debug("skip", zap.Int("offset", cursor), zap.Int("bytes", step.Skip))
			cursor += step.Skip
			continue
		}

		need := step.Type.Size()
		if cursor+need > len(data) {
			available := max(0, len(data)-cursor)
			annotations = append(annotations, types.NewError(cursor, available, step.DisplayName(),
				fmt.Sprintf("expected %d bytes, only %d available", need, available)))
			log.Debug("field truncated",
				zap.String("name", step.DisplayName()),
				zap.Int("offset", cursor),
				zap.Int("expected", need),
				zap.Int("available", available))
			return annotations, &InsufficientDataError{
				Name:      step.DisplayName(),
				Type:      step.Type,
				Offset:    cursor,
				Expected:  need,
				Available: available,
			}
		}

		value, err := codec.Decode(step.Type, data[cursor:cursor+need], order)
		if err != nil {
			return annotations, fmt.Errorf("%w: %s at offset %d: %v", ErrInternal, step, cursor, err)
		}
		annotations = append(annotations, types.NewField(cursor, need, step.DisplayName(), value))
		log.Debug("decoded field",
			zap.String("name", step.DisplayName()),
			zap.Stringer("type", step.Type),
			zap.Int("offset", cursor),
			zap.String("value", value))
		cursor += need
	}

	return annotations, nil
}
