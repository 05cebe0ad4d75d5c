package asset

// DefaultScene is the built-in scene used when no scene file is configured
// Sized for an 80x24 terminal at cell size 1
const DefaultScene = `
name: harbor

characters:
  - { name: Ann, tag: Water, position: { x: 5.5, y: 4.5 }, color: skyblue }
  - { name: Bob, tag: Water, position: { x: 8.5, y: 6.5 }, color: skyblue }
  - { name: Cid, tag: Fire, position: { x: 6.5, y: 10.5 }, color: orangered }
  - { name: Dee, tag: Fire, position: { x: 10.5, y: 12.5 }, color: orangered }
  - { name: Eve, tag: Earth, position: { x: 4.5, y: 16.5 }, color: lightgreen, speed: 8 }

treasures:
  - { name: Chest, tag: Gold, position: { x: 25.5, y: 8.5 }, weight: 2, carry_radius: 5 }
  - { name: Idol, tag: Gold, position: { x: 40.5, y: 14.5 }, weight: 3, carry_radius: 4 }
  - { name: Gem, tag: Gold, position: { x: 30.5, y: 18.5 }, weight: 1, carry_radius: 3 }

goals:
  - name: Pool
    allowed_tag: Water
    min: { x: 60, y: 1 }
    max: { x: 72, y: 6 }
    assigned: [Ann, Bob]
  - name: Forge
    allowed_tag: Fire
    min: { x: 60, y: 8 }
    max: { x: 72, y: 13 }
    assigned: [Cid, Dee]
  - name: Vault
    allowed_tag: Gold
    min: { x: 60, y: 15 }
    max: { x: 72, y: 20 }
    assigned: [Chest, Idol, Gem]
`
