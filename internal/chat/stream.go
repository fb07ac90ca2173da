package chat

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"
)

// doneSentinel is the line that terminates a completion stream.
const doneSentinel = "data: [DONE]"

// streamChunk is the decoded payload of a single data line.
type streamChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

// StreamDecoder accumulates the content deltas of a chat completion stream.
// Lines are fed one at a time with [StreamDecoder.Feed]; once the done
// sentinel has been seen the decoder is terminal and further input is
// discarded. Blank lines and lines without the "data:" prefix are ignored,
// and payloads that fail to parse as JSON are skipped rather than treated
// as errors.
type StreamDecoder struct {
	onToken func(string)
	text    strings.Builder
	done    bool
}

// NewStreamDecoder returns a decoder that calls onToken synchronously with
// each content delta as it is decoded. onToken may be nil.
func NewStreamDecoder(onToken func(string)) *StreamDecoder {
	return &StreamDecoder{onToken: onToken}
}

// Feed consumes one line of the stream.
func (d *StreamDecoder) Feed(line string) {
	if d.done {
		return
	}
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || !strings.HasPrefix(line, "data:") {
		return
	}
	if trimmed == doneSentinel {
		d.done = true
		return
	}

	payload := strings.TrimPrefix(line, "data: ")
	if payload == line {
		payload = strings.TrimPrefix(line, "data:")
	}

	var chunk streamChunk
	if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
		return
	}
	if len(chunk.Choices) == 0 {
		return
	}
	delta := chunk.Choices[0].Delta.Content
	if delta == "" {
		return
	}

	d.text.WriteString(delta)
	if d.onToken != nil {
		d.onToken(delta)
	}
}

// Done reports whether the done sentinel has been seen.
func (d *StreamDecoder) Done() bool { return d.done }

// Text returns the accumulated content so far.
func (d *StreamDecoder) Text() string { return d.text.String() }

// DecodeStream drains r through a [StreamDecoder] and returns the
// accumulated content. The stream ending before the sentinel, whether from
// a clean close or a read error, is not a failure: whatever was decoded up
// to that point is the result.
func DecodeStream(r io.Reader, onToken func(string)) string {
	d := NewStreamDecoder(onToken)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		d.Feed(sc.Text())
		if d.Done() {
			break
		}
	}
	return d.Text()
}
