package renderer

import (
	"fmt"

	"github.com/Faultbox/terraview/internal/engine/lighting"
)

const terrainVertexShader = `#version 410 core

layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;

uniform mat4 uViewProj;

out vec3 vWorldPos;
out vec3 vNormal;

void main() {
    vWorldPos = aPosition;
    vNormal = aNormal;
    gl_Position = uViewProj * vec4(aPosition, 1.0);
}
`

// Normals arrive unnormalized; the fragment stage normalizes them.
var terrainFragmentShader = fmt.Sprintf(`#version 410 core

#define MAX_POINT_LIGHTS %d

in vec3 vWorldPos;
in vec3 vNormal;

uniform vec3 uColor;
uniform vec3 uAmbient;

uniform vec3 uPointLightPositions[MAX_POINT_LIGHTS];
uniform vec3 uPointLightColors[MAX_POINT_LIGHTS];
uniform float uPointLightRanges[MAX_POINT_LIGHTS];
uniform float uPointLightIntensities[MAX_POINT_LIGHTS];
uniform int uPointLightCount;

out vec4 FragColor;

float falloff(float distSq, float range, float intensity) {
    float ratio = distSq / (range * range);
    float window = clamp(1.0 - ratio * ratio, 0.0, 1.0);
    return intensity / (4.0 * 3.14159265) * window * window / max(distSq, 1e-4);
}

void main() {
    vec3 n = normalize(vNormal);
    vec3 light = uAmbient;

    for (int i = 0; i < uPointLightCount; i++) {
        vec3 toLight = uPointLightPositions[i] - vWorldPos;
        float distSq = dot(toLight, toLight);
        float ndotl = max(dot(n, normalize(toLight)), 0.0);
        light += uPointLightColors[i] * falloff(distSq, uPointLightRanges[i], uPointLightIntensities[i]) * ndotl;
    }

    vec3 color = uColor * light;
    FragColor = vec4(color / (color + vec3(1.0)), 1.0);
}
`, lighting.MaxPointLights)

const lineVertexShader = `#version 410 core

layout (location = 0) in vec3 aPosition;

uniform mat4 uViewProj;

void main() {
    gl_Position = uViewProj * vec4(aPosition, 1.0);
}
`

const lineFragmentShader = `#version 410 core

uniform vec3 uColor;

out vec4 FragColor;

void main() {
    FragColor = vec4(uColor, 1.0);
}
`
