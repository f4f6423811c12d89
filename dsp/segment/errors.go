package segment

import "fmt"

func validate(n, segmentLen, overlap int) error {
	if segmentLen <= 0 {
		return fmt.Errorf("segment: length must be > 0: %d", segmentLen)
	}

	if n < segmentLen {
		return fmt.Errorf("segment: length %d exceeds signal length %d", segmentLen, n)
	}

	if overlap < 0 {
		return fmt.Errorf("segment: overlap must be >= 0: %d", overlap)
	}

	if overlap >= segmentLen {
		return fmt.Errorf("segment: overlap %d must be smaller than segment length %d", overlap, segmentLen)
	}

	return nil
}

func errNoSegments(n, segmentLen, overlap int) error {
	return fmt.Errorf("segment: signal of length %d yields no full segments (length=%d overlap=%d)", n, segmentLen, overlap)
}
