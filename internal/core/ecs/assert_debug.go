//go:build !ecsrelease

package ecs

// debugAssertions enables existence checks on hot paths. Build with the
// ecsrelease tag to compile them out.
const debugAssertions = true
