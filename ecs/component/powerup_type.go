package component

import "fmt"

// PowerUpType tags a power-up pickup with the effect it grants.
type PowerUpType int

const (
	PowerUpSpeed PowerUpType = iota
	PowerUpSticky
	PowerUpPassThrough
	PowerUpPaddleSizeIncrease
	PowerUpConfuse
	PowerUpChaos
)

// PowerUpTypes lists every type in spawn-roll order.
var PowerUpTypes = [...]PowerUpType{
	PowerUpSpeed,
	PowerUpSticky,
	PowerUpPassThrough,
	PowerUpPaddleSizeIncrease,
	PowerUpConfuse,
	PowerUpChaos,
}

var powerUpNames = map[PowerUpType]string{
	PowerUpSpeed:              "speed",
	PowerUpSticky:             "sticky",
	PowerUpPassThrough:        "pass-through",
	PowerUpPaddleSizeIncrease: "pad-size-increase",
	PowerUpConfuse:            "confuse",
	PowerUpChaos:              "chaos",
}

func (t PowerUpType) String() string {
	if name, ok := powerUpNames[t]; ok {
		return name
	}
	return fmt.Sprintf("PowerUpType(%d)", int(t))
}

// ParsePowerUpType maps a config or script name back to its type.
func ParsePowerUpType(name string) (PowerUpType, error) {
	for t, n := range powerUpNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("component: unknown power-up type %q", name)
}
