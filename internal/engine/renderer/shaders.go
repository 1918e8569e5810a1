package renderer

// toonVertexShader transforms vertices to clip space and passes world
// position and normal to the fragment stage.
const toonVertexShader = `
#version 330 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;
uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProj;
out vec3 vWorldPos;
out vec3 vNormal;
void main() {
    vec4 worldPos = uModel * vec4(aPos, 1.0);
    vWorldPos = worldPos.xyz;
    vNormal = mat3(uModel) * aNormal;
    gl_Position = uProj * uView * worldPos;
}
`

// toonFragmentShader quantizes the lambert term into uSteps discrete bands
// and blends between the dark and light water colors.
const toonFragmentShader = `
#version 330 core
in vec3 vWorldPos;
in vec3 vNormal;
out vec4 fragColor;
uniform vec3 uCamPos;
uniform vec3 uLightPos;
uniform int uSteps;
uniform vec3 uDarkColor;
uniform vec3 uLightColor;
void main() {
    vec3 normal = normalize(vNormal);
    vec3 lightDir = normalize(uLightPos - vWorldPos);
    float lambert = max(dot(normal, lightDir), 0.0);
    float toonLevel = floor(lambert * float(uSteps)) / float(uSteps);
    vec3 color = mix(uDarkColor, uLightColor, toonLevel);
    fragColor = vec4(color, 1.0);
}
`
