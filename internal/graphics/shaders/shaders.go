// Package shaders holds the GLSL sources of the demos. Attribute locations
// match graphics.AttribPosition, AttribColor and AttribNormal.
package shaders

// PointLightVertex passes world position and transformed normal to the
// fragment stage for per-pixel lighting
const PointLightVertex = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aColor;
layout(location = 2) in vec3 aNormal;
uniform mat4 u_MvpMatrix;
uniform mat4 u_ModelMatrix;
uniform mat4 u_NormalMatrix;
out vec3 vPosition;
out vec3 vColor;
out vec3 vNormal;
void main() {
	gl_Position = u_MvpMatrix * vec4(aPos, 1.0);
	vPosition = vec3(u_ModelMatrix * vec4(aPos, 1.0));
	vNormal = normalize(vec3(u_NormalMatrix * vec4(aNormal, 0.0)));
	vColor = aColor;
}
`

// PointLightFragment shades with diffuse from a point light plus ambient
const PointLightFragment = `#version 410 core
uniform vec3 u_LightColor;
uniform vec3 u_LightPosition;
uniform vec3 u_AmbientLight;
in vec3 vPosition;
in vec3 vColor;
in vec3 vNormal;
out vec4 FragColor;
void main() {
	vec3 normal = normalize(vNormal);
	vec3 lightDirection = normalize(u_LightPosition - vPosition);
	float nDotL = max(dot(normal, lightDirection), 0.0);
	vec3 diffuse = u_LightColor * vColor * nDotL;
	vec3 ambient = u_AmbientLight * vColor;
	FragColor = vec4(diffuse + ambient, 1.0);
}
`

// DirectionalVertex lights per vertex with a fixed world-space direction
const DirectionalVertex = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aColor;
layout(location = 2) in vec3 aNormal;
uniform mat4 u_MvpMatrix;
uniform mat4 u_NormalMatrix;
uniform vec3 u_LightColor;
uniform vec3 u_LightDirection;
uniform vec3 u_AmbientLight;
out vec3 vColor;
void main() {
	gl_Position = u_MvpMatrix * vec4(aPos, 1.0);
	vec3 normal = normalize(vec3(u_NormalMatrix * vec4(aNormal, 0.0)));
	float nDotL = max(dot(u_LightDirection, normal), 0.0);
	vec3 diffuse = u_LightColor * aColor * nDotL;
	vec3 ambient = u_AmbientLight * aColor;
	vColor = diffuse + ambient;
}
`

// DirectionalFragment outputs the interpolated vertex color
const DirectionalFragment = `#version 410 core
in vec3 vColor;
out vec4 FragColor;
void main() {
	FragColor = vec4(vColor, 1.0);
}
`

// MultiPointVertex rotates colored points and sizes each one from its attribute
const MultiPointVertex = `#version 410 core
layout(location = 0) in vec2 aPos;
layout(location = 1) in vec3 aColor;
layout(location = 2) in float aPointSize;
uniform mat4 u_ModelMatrix;
out vec3 vColor;
void main() {
	gl_Position = u_ModelMatrix * vec4(aPos, 0.0, 1.0);
	gl_PointSize = aPointSize;
	vColor = aColor;
}
`

const MultiPointFragment = `#version 410 core
in vec3 vColor;
out vec4 FragColor;
void main() {
	FragColor = vec4(vColor, 1.0);
}
`

// TexturedQuadVertex passes texture coordinates through
const TexturedQuadVertex = `#version 410 core
layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aTexCoord;
out vec2 vTexCoord;
void main() {
	gl_Position = vec4(aPos, 0.0, 1.0);
	vTexCoord = aTexCoord;
}
`

// TexturedQuadFragment multiplies two texture samples
const TexturedQuadFragment = `#version 410 core
uniform sampler2D u_Sampler0;
uniform sampler2D u_Sampler1;
in vec2 vTexCoord;
out vec4 FragColor;
void main() {
	vec4 color0 = texture(u_Sampler0, vTexCoord);
	vec4 color1 = texture(u_Sampler1, vTexCoord);
	FragColor = color0 * color1;
}
`

// CanvasVertex draws clicked points at a fixed size
const CanvasVertex = `#version 410 core
layout(location = 0) in vec2 aPos;
layout(location = 1) in vec4 aColor;
out vec4 vColor;
void main() {
	gl_Position = vec4(aPos, 0.0, 1.0);
	gl_PointSize = 10.0;
	vColor = aColor;
}
`

// CanvasFragment outputs the point color
const CanvasFragment = `#version 410 core
in vec4 vColor;
out vec4 FragColor;
void main() {
	FragColor = vColor;
}
`
