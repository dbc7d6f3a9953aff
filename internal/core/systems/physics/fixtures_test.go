package physics

import "github.com/zeusync/tilephys/pkg/vector"

// body is a minimal dynamic used across the package tests.
type body struct {
	name     string
	pos      vector.Vec2
	vel      vector.Vec2
	box      *Hitbox
	grounded bool
	solid    bool
	owns     bool
	react    func(other Dynamic)

	trace      *[]string
	staticHits []Static
	dynHits    []Dynamic
}

func newBody(name string, x, y, w, h float64) *body {
	b := &body{name: name, pos: vector.New(x, y)}
	b.box = NewHitbox(&b.pos, vector.Zero(), w, h)
	return b
}

func (b *body) Hitbox() *Hitbox        { return b.box }
func (b *body) IsSolid() bool          { return b.solid }
func (b *body) Position() *vector.Vec2 { return &b.pos }
func (b *body) Velocity() *vector.Vec2 { return &b.vel }
func (b *body) IsOnGround() bool       { return b.grounded }
func (b *body) OwnsGravity() bool      { return b.owns }
func (b *body) SetOnGround(g bool)     { b.grounded = g }
func (b *body) CollideWithStatic(s Static) {
	b.staticHits = append(b.staticHits, s)
	if b.trace != nil {
		*b.trace = append(*b.trace, b.name)
	}
}

func (b *body) CollideWithDynamic(d Dynamic) {
	b.dynHits = append(b.dynHits, d)
	if b.trace != nil {
		*b.trace = append(*b.trace, b.name)
	}
	if b.react != nil {
		b.react(d)
	}
	if b.solid {
		Resolve(d, b)
	}
}

// block is a static that pushes dynamics out when solid.
type block struct {
	name  string
	pos   vector.Vec2
	box   *Hitbox
	solid bool
	trace *[]string
	hits  []Dynamic
}

func newBlock(name string, x, y, w, h float64) *block {
	b := &block{name: name, pos: vector.New(x, y), solid: true}
	b.box = NewHitbox(&b.pos, vector.Zero(), w, h)
	return b
}

func (b *block) Hitbox() *Hitbox          { return b.box }
func (b *block) IsSolid() bool            { return b.solid }
func (b *block) CollideWithStatic(Static) {}
func (b *block) CollideWithDynamic(d Dynamic) {
	b.hits = append(b.hits, d)
	if b.trace != nil {
		*b.trace = append(*b.trace, b.name)
	}
	if b.solid {
		Resolve(d, b)
	}
}

type world struct {
	dynamics []Dynamic
	statics  []Static
}

func (w *world) Dynamics() []Dynamic { return w.dynamics }
func (w *world) Statics() []Static   { return w.statics }
