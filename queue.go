// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsenet

// queue is a FIFO of pulses backed by a ring buffer.
//
type queue struct {
	buf  []Pulse
	head int
	n    int
}

func (q *queue) len() int { return q.n }

func (q *queue) push(p Pulse) {
	if q.n == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.n)%len(q.buf)] = p
	q.n++
}

func (q *queue) pop() (Pulse, bool) {
	if q.n == 0 {
		return Pulse{}, false
	}
	p := q.buf[q.head]
	q.buf[q.head] = Pulse{}
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	return p, true
}

func (q *queue) grow() {
	sz := 2 * len(q.buf)
	if sz == 0 {
		sz = 64
	}
	buf := make([]Pulse, sz)
	// unroll the ring so that head is at index 0
	k := copy(buf, q.buf[q.head:])
	copy(buf[k:], q.buf[:q.head])
	q.buf = buf
	q.head = 0
}

func (q *queue) reset() {
	for i := range q.buf {
		q.buf[i] = Pulse{}
	}
	q.head, q.n = 0, 0
}
