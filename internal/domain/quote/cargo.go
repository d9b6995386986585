package quote

import (
	"fmt"

	"github.com/harborlane/freightflow-go/internal/domain/shared"
)

// CargoMode discriminates the two cargo variants of a draft
type CargoMode string

const (
	CargoModeLoose     CargoMode = "loose"
	CargoModeContainer CargoMode = "fullContainer"
)

// ContainerSize enumerates the bookable container footprints
type ContainerSize string

const (
	ContainerSize20   ContainerSize = "20"
	ContainerSize40   ContainerSize = "40"
	ContainerSize40HC ContainerSize = "40HC"
	ContainerSize45HC ContainerSize = "45HC"
)

var containerSizes = map[ContainerSize]bool{
	ContainerSize20:   true,
	ContainerSize40:   true,
	ContainerSize40HC: true,
	ContainerSize45HC: true,
}

// ParseContainerSize validates a raw size string
func ParseContainerSize(s string) (ContainerSize, error) {
	size := ContainerSize(s)
	if !containerSizes[size] {
		return "", shared.NewValidationError("containerSize", fmt.Sprintf("unknown container size %q", s))
	}
	return size, nil
}

// LooseCargo holds the fields meaningful in loose mode
type LooseCargo struct {
	WeightKg  float64
	VolumeCbm float64
}

func (c LooseCargo) Validate() error {
	if c.WeightKg < 0 {
		return shared.NewValidationError("weight", "cannot be negative")
	}
	if c.VolumeCbm < 0 {
		return shared.NewValidationError("volume", "cannot be negative")
	}
	return nil
}

// ContainerCargo holds the fields meaningful in full-container mode
type ContainerCargo struct {
	Size     ContainerSize
	Quantity int
}

func (c ContainerCargo) Validate() error {
	if !containerSizes[c.Size] {
		return shared.NewValidationError("containerSize", fmt.Sprintf("unknown container size %q", string(c.Size)))
	}
	if c.Quantity <= 0 {
		return shared.NewValidationError("quantity", "must be a positive integer")
	}
	return nil
}

// CargoSpec is a tagged union over the loose and full-container variants.
// Both variants may carry values after a mode switch (no hard erasure), but
// only the active variant is validated and serialized downstream.
type CargoSpec struct {
	Mode      CargoMode
	Loose     LooseCargo
	Container ContainerCargo
}

// UseLoose switches to loose mode and records weight/volume
func (s *CargoSpec) UseLoose(weightKg, volumeCbm float64) error {
	loose := LooseCargo{WeightKg: weightKg, VolumeCbm: volumeCbm}
	if err := loose.Validate(); err != nil {
		return err
	}
	s.Mode = CargoModeLoose
	s.Loose = loose
	return nil
}

// UseContainer switches to full-container mode and records size/quantity
func (s *CargoSpec) UseContainer(size ContainerSize, quantity int) error {
	container := ContainerCargo{Size: size, Quantity: quantity}
	if err := container.Validate(); err != nil {
		return err
	}
	s.Mode = CargoModeContainer
	s.Container = container
	return nil
}

// Validate checks the active variant only; stale values in the inactive
// variant are tolerated
func (s CargoSpec) Validate() error {
	switch s.Mode {
	case CargoModeLoose:
		return s.Loose.Validate()
	case CargoModeContainer:
		return s.Container.Validate()
	default:
		return shared.NewValidationError("cargoType", "must be loose or fullContainer")
	}
}
