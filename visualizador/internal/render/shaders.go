package render

// Nome do sampler principal do programa "sun".
const samplerUniform = "uTexture"

// Programa iluminado: Phong com duas luzes pontuais.
const sunVertexShader = `
#version 330

in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec3 fragNormal;
out vec3 fragWorldPos;
out vec2 fragTexCoord;

void main()
{
    gl_Position = projection * view * model * vec4(vertexPosition, 1.0);

    // Posição e normal em espaço de mundo
    fragWorldPos = vec3(model * vec4(vertexPosition, 1.0));
    fragNormal = mat3(transpose(inverse(model))) * vertexNormal;
    fragTexCoord = vertexTexCoord;
}
`

const sunFragmentShader = `
#version 330

in vec3 fragNormal;
in vec3 fragWorldPos;
in vec2 fragTexCoord;

out vec4 finalColor;

uniform vec3 lightPos1;
uniform vec3 lightColor1;
uniform float light_1_strength;
uniform vec3 lightPos2;
uniform vec3 lightColor2;
uniform float light_2_strength;
uniform vec3 ambientStrength;
uniform float specularIntensity;
uniform vec3 viewPosition;
uniform sampler2D uTexture;
uniform sampler2D uTextureExtra;
uniform bool multipleTextures;
uniform vec2 uvScale;

const float shininess = 16.0;

void main()
{
    vec4 textureColor = texture(uTexture, fragTexCoord * uvScale);
    if (multipleTextures) {
        vec4 extra = texture(uTextureExtra, fragTexCoord);
        if (extra.a != 0.0) {
            textureColor = extra;
        }
    }

    vec3 norm = normalize(fragNormal);
    vec3 viewDir = normalize(viewPosition - fragWorldPos);

    // Luz 1 (light_1_strength não entra nos termos)
    vec3 ambient = ambientStrength * lightColor1;
    vec3 lightDir = normalize(lightPos1 - fragWorldPos);
    vec3 diffuse = max(dot(norm, lightDir), 0.0) * lightColor1;
    vec3 reflectDir = reflect(-lightDir, norm);
    vec3 specular = specularIntensity * pow(max(dot(viewDir, reflectDir), 0.0), shininess) * lightColor1;

    // Luz 2
    ambient += light_2_strength * (ambientStrength * lightColor2);
    lightDir = normalize(lightPos2 - fragWorldPos);
    diffuse += light_2_strength * (max(dot(norm, lightDir), 0.0) * lightColor2);
    reflectDir = reflect(-lightDir, norm);
    specular += light_2_strength * (specularIntensity * pow(max(dot(viewDir, reflectDir), 0.0), shininess) * lightColor2);

    vec3 phong = (ambient + diffuse + specular) * textureColor.rgb;
    finalColor = vec4(phong, 1.0);
}
`

// Programa sem iluminação para os cubos das lâmpadas.
const lampVertexShader = `
#version 330

in vec3 vertexPosition;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

void main()
{
    gl_Position = projection * view * model * vec4(vertexPosition, 1.0);
}
`

const lampFragmentShader = `
#version 330

out vec4 finalColor;

void main()
{
    finalColor = vec4(1.0);
}
`
