package sdlview

import "image/color"

const defaultMaxCacheSize = 64

// destroyer is a GPU resource released on eviction.
type destroyer interface {
	Destroy() error
}

// textKey identifies a rendered text run.
type textKey struct {
	text  string
	color color.RGBA
}

// textureCache keeps the most recently drawn text textures. Menu rows are
// redrawn every frame with the same strings, so most lookups hit.
type textureCache[T destroyer] struct {
	textures map[textKey]T
	order    []textKey // least recently used first
	maxSize  int
}

func newTextureCache[T destroyer](maxSize int) *textureCache[T] {
	if maxSize < 1 {
		maxSize = defaultMaxCacheSize
	}
	return &textureCache[T]{
		textures: make(map[textKey]T),
		order:    make([]textKey, 0, maxSize),
		maxSize:  maxSize,
	}
}

func (c *textureCache[T]) get(key textKey) (T, bool) {
	texture, ok := c.textures[key]
	if ok {
		c.moveToEnd(key)
	}
	return texture, ok
}

func (c *textureCache[T]) set(key textKey, texture T) {
	if old, ok := c.textures[key]; ok {
		old.Destroy()
		c.textures[key] = texture
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

func (c *textureCache[T]) len() int { return len(c.order) }

func (c *textureCache[T]) moveToEnd(key textKey) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *textureCache[T]) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, ok := c.textures[oldest]; ok {
		texture.Destroy()
		delete(c.textures, oldest)
	}
}

func (c *textureCache[T]) destroy() {
	for _, texture := range c.textures {
		texture.Destroy()
	}
	c.textures = make(map[textKey]T)
	c.order = c.order[:0]
}
